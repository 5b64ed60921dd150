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
	"strings"
	"unicode"
	"unicode/utf8"
)

// Variables gives access to variable values, such as the process environment.
type Variables interface {
	// Lookup returns the value of the named variable and true, or "" and false
	// if the variable is unset.
	Lookup(name string) (string, bool)
}

// Segment produces plain text upon request with all variable references
// replaced by their values or defaults.
type Segment interface {
	Text(vars Variables) (string, error)
}

// Segments is a slice of Segment-implementing objects that produce plain text
// upon request while doing variable substitutions.
type Segments []Segment

// Text returns the plain text from the slice of segments, substituting variable
// values as necessary.
func (segs Segments) Text(vars Variables) (string, error) {
	var text strings.Builder
	for _, seg := range segs {
		segtext, err := seg.Text(vars)
		if err != nil {
			return "", err
		}
		text.WriteString(segtext)
	}
	return text.String(), nil
}

// PlainText is just what it says on the tin: plain text, no substitutes.
type PlainText string

// Text returns plain text without any substitutions.
func (pt PlainText) Text(Variables) (string, error) {
	return string(pt), nil
}

// Literal is an escaped reference “$${...}” that is never evaluated; it
// contains the reference text without the escaping “$”.
type Literal string

// Text returns the reference text verbatim.
func (l Literal) Text(Variables) (string, error) {
	return string(l), nil
}

// Reference represents a particular variable reference in one of its forms
// “${NAME}”, “${NAME[delim]~:default}”, or “${NAME~?}”.
type Reference struct {
	Expression   string // the complete reference text, including “${” and “}”
	Name         string // name of the variable to substitute
	Delimiter    string // list delimiter, if HasDelimiter
	HasDelimiter bool
	Trim         bool   // trim whitespace from the value(s)
	Default      string // default text without the leading colon, if HasDefault
	HasDefault   bool
	NullIfUnset  bool // “?” flag
}

// Text returns the value of the referenced variable, or its default, as it is
// to be substituted within some surrounding text. Neither list expansion nor
// null-if-unset can be carried out inside other text, so these forms are
// reported as syntax errors.
func (ref Reference) Text(vars Variables) (string, error) {
	if ref.HasDelimiter {
		return "", &SyntaxError{
			Expression: ref.Expression,
			Reason:     "list expansion is not supported within strings",
		}
	}
	value, ok := vars.Lookup(ref.Name)
	if !ok {
		switch {
		case ref.NullIfUnset:
			return "", &SyntaxError{
				Expression: ref.Expression,
				Reason:     "null-if-unset flag '?' is not supported within strings",
			}
		case !ref.HasDefault:
			return "", &LookupError{Name: ref.Name}
		}
		value = ref.Default
	}
	if ref.Trim {
		value = strings.TrimSpace(value)
	}
	return value, nil
}

// Value returns the value of the referenced variable when the reference makes
// up an entire string value. Depending on the form of the reference, the value
// is either a string, a []any of strings, or nil.
func (ref Reference) Value(vars Variables) (any, error) {
	value, ok := vars.Lookup(ref.Name)
	if ref.NullIfUnset && !ok {
		return nil, nil
	}
	if !ref.HasDelimiter {
		return ref.Text(vars)
	}
	if !ok {
		value = ref.Default // which is "" without any default.
	}
	elements := strings.Split(value, ref.Delimiter)
	list := make([]any, 0, len(elements))
	for _, element := range elements {
		if ref.Trim {
			element = strings.TrimSpace(element)
		}
		list = append(list, element)
	}
	return list, nil
}

// parse the specified string into a list of Segment objects. Text not forming
// a complete reference is kept as plain text, so parsing never fails.
func parse(s string) Segments {
	segments := Segments{}
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			segments = append(segments, PlainText(text.String()))
			text.Reset()
		}
	}
	for idx := 0; idx < len(s); {
		if s[idx] == '$' {
			// Is it an escaped $${...} reference? Only a complete reference
			// swallows the escaping $, otherwise it is just text.
			if idx+1 < len(s) && s[idx+1] == '$' {
				if ref, length, ok := parseReference(s[idx+1:]); ok {
					flush()
					segments = append(segments, Literal(ref.Expression))
					idx += 1 + length
					continue
				}
			}
			if ref, length, ok := parseReference(s[idx:]); ok {
				flush()
				segments = append(segments, ref)
				idx += length
				continue
			}
		}
		// ...copy character over to current text segment.
		text.WriteByte(s[idx])
		idx++
	}
	flush()
	return segments
}

// parseReference parses a reference at the beginning of s, returning the
// reference and its length in bytes. It returns false if s doesn't start with
// a complete and well-formed reference.
func parseReference(s string) (ref Reference, length int, ok bool) {
	if !strings.HasPrefix(s, "${") {
		return Reference{}, 0, false
	}
	idx := 2
	name := parseName(s[idx:])
	if name == "" {
		return Reference{}, 0, false
	}
	ref.Name = name
	idx += len(name)
	// optional list delimiter in brackets, consisting of at least one
	// character that is neither a closing bracket nor a closing brace.
	if idx < len(s) && s[idx] == '[' {
		end := strings.IndexAny(s[idx+1:], "]}")
		if end <= 0 || s[idx+1+end] != ']' {
			return Reference{}, 0, false
		}
		ref.Delimiter = s[idx+1 : idx+1+end]
		ref.HasDelimiter = true
		idx += end + 2
	}
	if idx < len(s) && s[idx] == '~' {
		ref.Trim = true
		idx++
	}
	if idx < len(s) {
		switch s[idx] {
		case ':':
			end := strings.IndexByte(s[idx:], '}')
			if end < 0 {
				return Reference{}, 0, false
			}
			ref.Default = s[idx+1 : idx+end]
			ref.HasDefault = true
			idx += end
		case '?':
			ref.NullIfUnset = true
			idx++
		}
	}
	if idx >= len(s) || s[idx] != '}' {
		return Reference{}, 0, false
	}
	idx++
	ref.Expression = s[:idx]
	return ref, idx, true
}

// parseName returns the variable name; if the name is "" then no name could be
// found at the beginning of the specified string s. The first character must be
// an ASCII letter or underscore, while the following characters might also be
// any Unicode letters or numbers.
func parseName(s string) string {
	for idx := 0; idx < len(s); {
		ch := s[idx]
		if ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			idx++
			continue
		}
		if idx == 0 {
			return ""
		}
		if ch >= '0' && ch <= '9' {
			idx++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[idx:])
		if r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsNumber(r)) {
			idx += size
			continue
		}
		return s[:idx]
	}
	return s
}
