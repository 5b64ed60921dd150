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
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when no parser has been registered for a
// requested format.
var ErrUnsupportedFormat = errors.New("no parser registered for format")

// ErrNotMapping is returned when a typed decode has been requested, but the
// configuration's top level isn't a mapping.
var ErrNotMapping = errors.New("configuration top level is not a mapping")

// DecodeError reports that a Decoder rejected a configuration, for instance,
// because of type mismatches in strict mode.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode configuration, reason: %s", e.Err.Error())
}

func (e *DecodeError) Unwrap() error { return e.Err }
