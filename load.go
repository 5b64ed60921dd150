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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thediveo/confspec/environ"
	"github.com/thediveo/confspec/interpolate"

	log "github.com/sirupsen/logrus"
)

// Option configures loading a configuration.
type Option func(*options)

type options struct {
	env         string
	environment environ.Environment
	registry    *Registry
}

// WithEnv sets the name of the environment overlay to load and merge on top of
// the base configuration file, taking precedence over the CONFSPEC_ENV
// environment variable.
func WithEnv(name string) Option {
	return func(o *options) {
		o.env = name
	}
}

// WithEnvironment sets the environment used for interpolation, as well as for
// determining and recording the environment overlay name. It defaults to the
// process environment.
func WithEnvironment(env environ.Environment) Option {
	return func(o *options) {
		o.environment = env
	}
}

// WithRegistry sets the registry of format parsers to use instead of the
// DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		environment: environ.OS(),
		registry:    DefaultRegistry,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load the configuration file at the specified path, merge an optional
// environment overlay file on top of it, and then interpolate environment
// variables, returning the resulting configuration tree. The file's (last)
// suffix determines the format.
//
// The environment overlay name is either set using [WithEnv], or otherwise
// taken from the CONFSPEC_ENV environment variable. Given a name, say “prod”,
// the overlay for “config.yaml” is “config.prod.yaml” in the same directory;
// see also [EnvFileName]. A missing overlay file is silently skipped. The
// environment overlay name in use is recorded in CONFSPEC_ENV.
//
// Recording the overlay name modifies the environment. Callers loading
// configurations concurrently with different overlay names thus need to either
// serialize their Load calls or pass separate environments using
// [WithEnvironment].
func Load(path string, opts ...Option) (any, error) {
	o := newOptions(opts)

	log.Debug(fmt.Sprintf("📄  loading configuration %q", path))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration, reason: %w", err)
	}
	sources := [][]byte{data}

	if env := o.resolveEnv(); env != "" {
		overlayPath := filepath.Join(filepath.Dir(path), EnvFileName(path, env))
		if info, err := os.Stat(overlayPath); err == nil && info.Mode().IsRegular() {
			log.Debug(fmt.Sprintf("📄  loading %q environment overlay %q", env, overlayPath))
			overlay, err := os.ReadFile(overlayPath)
			if err != nil {
				return nil, fmt.Errorf("cannot read environment overlay, reason: %w", err)
			}
			sources = append(sources, overlay)
		} else {
			log.Debug(fmt.Sprintf("   no %q environment overlay %q, skipping", env, overlayPath))
		}
	}

	return o.load(sources, FormatOf(path))
}

// Loads works like [Load], but reads the configuration from the passed raw
// data in the specified format instead. There is no environment overlay.
func Loads(raw []byte, format string, opts ...Option) (any, error) {
	return LoadsAll([][]byte{raw}, format, opts...)
}

// LoadsAll reads configurations from the passed raw data, all in the specified
// format, and merges them from left to right before interpolating. That is,
// the first raw data is the base configuration and any further ones are
// overlays.
func LoadsAll(raws [][]byte, format string, opts ...Option) (any, error) {
	return newOptions(opts).load(raws, format)
}

// LoadAs loads the configuration file at the specified path as [Load] does and
// then decodes it into a value of type T using the specified decoder.
func LoadAs[T any](path string, dec Decoder, opts ...Option) (T, error) {
	tree, err := Load(path, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](tree, dec)
}

// LoadsAs reads the configuration from the passed raw data as [Loads] does and
// then decodes it into a value of type T using the specified decoder.
func LoadsAs[T any](raw []byte, format string, dec Decoder, opts ...Option) (T, error) {
	tree, err := Loads(raw, format, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](tree, dec)
}

// resolveEnv returns the name of the environment overlay, if any, and records
// it in the environment.
func (o *options) resolveEnv() string {
	env := strings.TrimSpace(o.env)
	if env == "" {
		value, _ := o.environment.Lookup(EnvVar)
		env = strings.TrimSpace(value)
	}
	if env == "" {
		return ""
	}
	if err := o.environment.Setenv(EnvVar, env); err != nil {
		log.Warn(fmt.Sprintf("cannot record environment overlay name %q, reason: %s", env, err.Error()))
	}
	return env
}

// load parses the raw sources, merges them in order, and finally interpolates
// the merged tree.
func (o *options) load(sources [][]byte, format string) (any, error) {
	parser, err := o.registry.Parser(format)
	if err != nil {
		return nil, err
	}
	trees := make([]any, 0, len(sources))
	for _, source := range sources {
		tree, err := parser.Read(bytes.TrimSpace(source))
		if err != nil {
			return nil, fmt.Errorf("cannot parse %s configuration, reason: %w", format, err)
		}
		trees = append(trees, Normalize(tree))
	}
	log.Debug(fmt.Sprintf("🔀  merging %d configuration(s)", len(trees)))
	return interpolate.Tree(MergeAll(trees...), o.environment)
}
