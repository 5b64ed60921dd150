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

import "fmt"

// SyntaxError reports a reference that is well-formed, but used in a place
// where it cannot be evaluated, such as a list expansion embedded into other
// text.
type SyntaxError struct {
	Path       Path   // path to the offending string value, if known
	Expression string // the offending reference text
	Reason     string
}

func (e *SyntaxError) Error() string {
	return inPath(e.Path, fmt.Sprintf("invalid reference %q: %s", e.Expression, e.Reason))
}

// LookupError reports a reference to an unset variable that specifies neither
// a default nor the null-if-unset flag.
type LookupError struct {
	Path Path   // path to the offending string value, if known
	Name string // name of the unset variable
}

func (e *LookupError) Error() string {
	return inPath(e.Path, fmt.Sprintf(
		"environment variable '%s' is not set and no default was specified", e.Name))
}

func inPath(path Path, msg string) string {
	if path == "" {
		return msg
	}
	return fmt.Sprintf("error in '%s': %s", string(path), msg)
}
