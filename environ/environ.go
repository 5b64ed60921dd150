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

package environ

import (
	"errors"
	"os"
)

// Environment gives access to a set of named variables, such as the process
// environment. Variables are always queried live; an Environment never caches
// values on behalf of its users.
type Environment interface {
	// Lookup returns the value of the named variable and true, or "" and false
	// if the variable is unset.
	Lookup(name string) (string, bool)
	// Setenv sets the named variable to the specified value.
	Setenv(name, value string) error
	// Unsetenv removes the named variable.
	Unsetenv(name string) error
}

// processEnv is the process-wide environment.
type processEnv struct{}

// OS returns the process environment.
//
// Please note that the process environment is shared mutable state: callers
// that need isolation (for instance, when loading configurations concurrently
// with different environment names) should use a Map instead.
func OS() Environment { return processEnv{} }

func (processEnv) Lookup(name string) (string, bool) { return os.LookupEnv(name) }
func (processEnv) Setenv(name, value string) error   { return os.Setenv(name, value) }
func (processEnv) Unsetenv(name string) error        { return os.Unsetenv(name) }

// Map is an in-memory Environment, useful for tests and for isolating loads
// from the process environment. A nil Map is an empty, read-only environment
// whose Setenv fails.
type Map map[string]string

var _ Environment = Map(nil)

// Lookup returns the value of the named variable, if set.
func (m Map) Lookup(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

// Setenv sets the named variable.
func (m Map) Setenv(name, value string) error {
	if m == nil {
		return errors.New("cannot set variable " + name + " in nil Map")
	}
	m[name] = value
	return nil
}

// Unsetenv removes the named variable.
func (m Map) Unsetenv(name string) error {
	delete(m, name)
	return nil
}

// TempSet temporarily sets the named variable in the specified environment to
// the passed value and returns a function that restores the original state
// when called; the returned function is meant to be deferred. If value is nil
// the variable is left as is, yet still restored later.
//
// Restoring removes a variable that wasn't set before, and otherwise resets it
// to its former value.
func TempSet(env Environment, name string, value *string) (restore func()) {
	oldValue, wasSet := env.Lookup(name)
	if value != nil {
		_ = env.Setenv(name, *value)
	}
	return func() {
		if wasSet {
			_ = env.Setenv(name, oldValue)
			return
		}
		_ = env.Unsetenv(name)
	}
}
