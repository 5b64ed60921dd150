// Copyright 2025 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package confspec

// Merge the overlay configuration tree into the base tree, returning the
// merged tree. For each key in an overlay mapping, if both the base and the
// overlay values are mappings, they are merged recursively. Otherwise, the
// overlay value replaces the base value; in particular, sequences are replaced
// as a whole and never concatenated. Keys only present in the base are kept.
//
// A nil overlay, such as from an empty document, has no keys and thus leaves
// base untouched. Otherwise, if either base or overlay isn't a mapping, then the
// overlay is returned.
//
// Merge updates base mappings in place and might share values between the
// overlay and the result.
func Merge(base, overlay any) any {
	if overlay == nil {
		return base
	}
	baseMap, ok := base.(map[string]any)
	if !ok {
		return overlay
	}
	overlayMap, ok := overlay.(map[string]any)
	if !ok {
		return overlay
	}
	return mergeMappings(baseMap, overlayMap)
}

func mergeMappings(base, overlay map[string]any) map[string]any {
	for key, overlayValue := range overlay {
		baseValue, ok := base[key].(map[string]any)
		if ok {
			if overlayMap, ok := overlayValue.(map[string]any); ok {
				mergeMappings(baseValue, overlayMap)
				continue
			}
		}
		base[key] = overlayValue
	}
	return base
}

// MergeAll merges the passed trees from left to right, with the leftmost tree
// accumulating the result. It returns nil when passed no trees.
func MergeAll(trees ...any) any {
	if len(trees) == 0 {
		return nil
	}
	merged := trees[0]
	for _, tree := range trees[1:] {
		merged = Merge(merged, tree)
	}
	return merged
}
