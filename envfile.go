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

import (
	"path/filepath"
	"strings"
)

// EnvVar is the name of the environment variable that selects the environment
// overlay when no environment name has been passed explicitly.
const EnvVar = "CONFSPEC_ENV"

// EnvFileName returns the name (without directory) of the environment overlay
// file belonging to the specified configuration file path. The environment name
// is inserted after the first dot-separated part of the file name, so
//
//   - “/foo/bar.yml” becomes “bar.prod.yml”,
//   - “/foo/bar.baz.yml” becomes “bar.prod.baz.yml”,
//   - and “/foo/.baz” becomes “.baz.prod”.
//
// Leading dots of hidden files belong to the first part.
func EnvFileName(path string, env string) string {
	name := filepath.Base(path)
	stem, suffixes := splitName(name)
	return stem + "." + env + suffixes
}

// FormatOf returns the format of the specified configuration file path, based
// on its last suffix. It returns "" if the file name has no suffix.
func FormatOf(path string) string {
	_, suffixes := splitName(filepath.Base(path))
	if suffixes == "" {
		return ""
	}
	return strings.ToLower(suffixes[strings.LastIndexByte(suffixes, '.')+1:])
}

// splitName splits a file name into its first part and the remaining suffixes
// including their leading dot.
func splitName(name string) (stem string, suffixes string) {
	trimmed := strings.TrimLeft(name, ".")
	leading := name[:len(name)-len(trimmed)]
	idx := strings.IndexByte(trimmed, '.')
	if idx < 0 {
		return name, ""
	}
	return leading + trimmed[:idx], trimmed[idx:]
}
