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

package interpolate

import (
	"errors"
	"strconv"
)

// Tree interpolates all string values in the passed (recursive) tree of
// mappings, sequences, and scalars with values from the passed variables as
// necessary. It returns a new tree with the interpolated results, leaving the
// passed tree untouched. In case of an error, no partial result is returned.
func Tree(data any, vars Variables) (any, error) {
	return recursively(data, "", vars)
}

// Mapping interpolates all string values in the passed (recursive) map with
// values from the passed variables as necessary. It returns a new (recursive)
// map with the interpolated results.
func Mapping(data map[string]any, vars Variables) (map[string]any, error) {
	return interpolateMapping(data, "", vars)
}

// String interpolates a single string value. If the value consists of only a
// single (unescaped) reference, the result might be a []any of strings or nil,
// depending on the form of the reference. Otherwise, the result is always a
// string.
func String(value string, vars Variables) (any, error) {
	return interpolateString(value, "", vars)
}

// recursively interpolate string values, string values inside mappings, and
// string values inside sequences.
func recursively(data any, path Path, vars Variables) (any, error) {
	switch value := data.(type) {
	case string:
		return interpolateString(value, path, vars)
	case map[string]any:
		return interpolateMapping(value, path, vars)
	case []any:
		return interpolateSequence(value, path, vars)
	default:
		return value, nil
	}
}

// interpolateString returns the interpolated value, or an error.
func interpolateString(value string, path Path, vars Variables) (any, error) {
	segments := parse(value)
	var result any
	var err error
	if ref, ok := fullReference(segments); ok {
		result, err = ref.Value(vars)
	} else {
		result, err = segments.Text(vars)
	}
	if err != nil {
		return nil, atPath(err, path)
	}
	return result, nil
}

// fullReference returns the sole reference making up the segments, if any.
func fullReference(segments Segments) (Reference, bool) {
	if len(segments) != 1 {
		return Reference{}, false
	}
	ref, ok := segments[0].(Reference)
	return ref, ok
}

// atPath tells interpolation errors where they happened.
func atPath(err error, path Path) error {
	var synerr *SyntaxError
	if errors.As(err, &synerr) {
		synerr.Path = path
		return err
	}
	var lookuperr *LookupError
	if errors.As(err, &lookuperr) {
		lookuperr.Path = path
	}
	return err
}

// interpolateMapping recursively interpolates the values in the mapping.
func interpolateMapping(values map[string]any, path Path, vars Variables) (map[string]any, error) {
	result := make(map[string]any, len(values))
	for key, value := range values {
		interpolValue, err := recursively(value, path.Append(key), vars)
		if err != nil {
			return nil, err
		}
		result[key] = interpolValue
	}
	return result, nil
}

// interpolateSequence recursively interpolates the values of the sequence.
func interpolateSequence(values []any, path Path, vars Variables) ([]any, error) {
	result := make([]any, 0, len(values))
	for idx, value := range values {
		interpolValue, err := recursively(value, path.AppendIndex(idx), vars)
		if err != nil {
			return nil, err
		}
		result = append(result, interpolValue)
	}
	return result, nil
}

// Path represents the path to a scalar.
type Path string

// Append the name of a mapping key or a scalar to the path, returning the new
// Path.
func (p Path) Append(name string) Path {
	if p == "" {
		return Path(name)
	}
	return Path(string(p) + "." + name)
}

// AppendIndex appends the index of an element to the path, returning the new
// Path.
func (p Path) AppendIndex(idx int) Path {
	return Path(string(p) + "[" + strconv.FormatInt(int64(idx), 10) + "]")
}
