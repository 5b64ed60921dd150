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
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Normalize returns the passed configuration tree in its canonical form, as
// produced by the built-in parsers: mappings are map[string]any, sequences are
// []any, integer numbers are int64, and floating point numbers are float64.
// Other map and slice types are converted as well. Strings, booleans, nil and
// any other scalars are returned unchanged.
//
// Parsers registered by users should normalize their results so that
// equivalent documents in different formats give identical trees.
func Normalize(tree any) any {
	switch value := tree.(type) {
	case map[string]any:
		for key, element := range value {
			value[key] = Normalize(element)
		}
		return value
	case map[any]any:
		m := make(map[string]any, len(value))
		for key, element := range value {
			m[fmt.Sprint(key)] = Normalize(element)
		}
		return m
	case []any:
		for idx, element := range value {
			value[idx] = Normalize(element)
		}
		return value
	case []map[string]any:
		s := make([]any, 0, len(value))
		for _, element := range value {
			s = append(s, Normalize(element))
		}
		return s
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		if f, err := value.Float64(); err == nil {
			return f
		}
		return value.String()
	case int:
		return int64(value)
	case int8:
		return int64(value)
	case int16:
		return int64(value)
	case int32:
		return int64(value)
	case uint:
		return normalizeUint(uint64(value))
	case uint8:
		return int64(value)
	case uint16:
		return int64(value)
	case uint32:
		return int64(value)
	case uint64:
		return normalizeUint(value)
	case float32:
		return float64(value)
	default:
		return normalizeContainer(value)
	}
}

// normalizeContainer converts other map and slice types, such as
// map[string]string or []string, into their canonical forms. Byte slices are
// scalars and thus returned unchanged, as are all non-container values.
func normalizeContainer(value any) any {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = Normalize(iter.Value().Interface())
		}
		return m
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return value
		}
		s := make([]any, 0, v.Len())
		for idx := 0; idx < v.Len(); idx++ {
			s = append(s, Normalize(v.Index(idx).Interface()))
		}
		return s
	default:
		return value
	}
}

func normalizeUint(u uint64) any {
	if u > math.MaxInt64 {
		return u
	}
	return int64(u)
}
