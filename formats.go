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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Parser reads a configuration document in a particular format, returning its
// configuration tree.
type Parser interface {
	Read(data []byte) (any, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc func(data []byte) (any, error)

// Read calls f(data).
func (f ParserFunc) Read(data []byte) (any, error) { return f(data) }

// The built-in parsers. They normalize the parsed documents so that equivalent
// documents result in identical trees; see [Normalize].
var (
	JSON Parser = ParserFunc(readJSON)
	YAML Parser = ParserFunc(readYAML)
	TOML Parser = ParserFunc(readTOML)
)

// Registry maps lowercase format names, such as “json” or “yml”, to their
// parsers.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

// DefaultRegistry is used by the loader functions unless told otherwise using
// [WithRegistry].
var DefaultRegistry = NewRegistry()

// NewRegistry returns a new Registry with the built-in parsers for JSON, TOML,
// and YAML registered.
func NewRegistry() *Registry {
	return &Registry{
		parsers: map[string]Parser{
			"json": JSON,
			"toml": TOML,
			"yaml": YAML,
			"yml":  YAML,
		},
	}
}

// Register a parser for the specified format, replacing any parser registered
// before for the same format. Format names are case-insensitive.
func (r *Registry) Register(format string, p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[strings.ToLower(format)] = p
}

// Parser returns the parser registered for the specified format, or an error
// wrapping ErrUnsupportedFormat.
func (r *Registry) Parser(format string) (Parser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parsers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
	return p, nil
}

// Formats returns the sorted names of all registered formats.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	formats := maps.Keys(r.parsers)
	r.mu.RUnlock()
	slices.Sort(formats)
	return formats
}

// Register a parser for the specified format with the DefaultRegistry.
func Register(format string, p Parser) {
	DefaultRegistry.Register(format, p)
}

func readJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("malformed JSON, reason: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("malformed JSON, reason: trailing data after top-level value")
	}
	return Normalize(tree), nil
}

func readYAML(data []byte) (any, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("malformed YAML, reason: %w", err)
	}
	return Normalize(tree), nil
}

func readTOML(data []byte) (any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("malformed TOML, reason: %w", err)
	}
	if tree == nil {
		tree = map[string]any{}
	}
	return Normalize(tree), nil
}
