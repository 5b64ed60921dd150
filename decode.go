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
	"fmt"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
)

// Decoder decodes the JSON representation of an interpolated configuration
// into the value pointed to by target. Callers choose the decoder fitting
// their target types.
type Decoder interface {
	Decode(data []byte, target any) error
}

// JSONDecoder decodes using encoding/json and thus the usual json struct tags.
// JSON decoding never coerces types, for instance, it never turns the string
// "42" into an int. In strict mode, unknown fields are rejected in addition.
type JSONDecoder struct {
	Strict bool
}

var _ Decoder = (*JSONDecoder)(nil)

// Decode the JSON data into target.
func (d JSONDecoder) Decode(data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if d.Strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(target)
}

// MapDecoder decodes using mapstructure. In lenient (non-strict) mode, it
// weakly converts between scalar types, such as from "42" to 42, or from "true"
// to true. In strict mode, no such conversions are done and keys without a
// corresponding field are rejected. An optional decode hook converts into
// additional types.
type MapDecoder struct {
	Strict  bool
	Hook    mapstructure.DecodeHookFunc // optional
	TagName string                      // struct tag name; defaults to "json".
}

var _ Decoder = (*MapDecoder)(nil)

// Decode the JSON data into target.
func (d MapDecoder) Decode(data []byte, target any) error {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return err
	}
	tagName := d.TagName
	if tagName == "" {
		tagName = "json"
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       d.Hook,
		ErrorUnused:      d.Strict,
		WeaklyTypedInput: !d.Strict,
		TagName:          tagName,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return dec.Decode(tree)
}

// WithDefaults returns a Decoder that decodes using the passed decoder, and
// then fills all fields that were left with their zero values from the
// corresponding fields of defaults. The defaults must be of the same struct
// type as the decoding target, either as a value or a pointer.
func WithDefaults(dec Decoder, defaults any) Decoder {
	return &defaultingDecoder{dec: dec, defaults: defaults}
}

type defaultingDecoder struct {
	dec      Decoder
	defaults any
}

func (d *defaultingDecoder) Decode(data []byte, target any) error {
	if err := d.dec.Decode(data, target); err != nil {
		return err
	}
	if err := mergo.Merge(target, d.defaults); err != nil {
		return fmt.Errorf("cannot apply defaults, reason: %w", err)
	}
	return nil
}

// Decode the passed configuration tree into a value of type T, using the
// specified decoder. The tree must be a mapping, otherwise ErrNotMapping is
// returned. Decoder failures are reported as a *DecodeError.
func Decode[T any](tree any, dec Decoder) (T, error) {
	var result T
	if _, ok := tree.(map[string]any); !ok {
		return result, fmt.Errorf("%w, but %T", ErrNotMapping, tree)
	}
	data, err := json.Marshal(tree)
	if err != nil {
		return result, &DecodeError{Err: err}
	}
	if err := dec.Decode(data, &result); err != nil {
		return result, &DecodeError{Err: err}
	}
	return result, nil
}
