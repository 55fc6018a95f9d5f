/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package uri provides an immutable value type for inspecting and building
// URIs and URLs.
//
// A URI is decomposed into six parts: protocol, domain, port, path, query and
// fragment. The query is exposed as decoded name/value Params. Every method
// that changes a part returns a new URI; the receiver is never modified, and
// two URIs never share their parameter maps.
//
// Key features include:
//   - Total parsing: every string produces a URI, however degenerate.
//   - Part access by enumeration (Get, Set, SetMany) or by named getters.
//   - Parameter projection (Retain) and defaulting (Defaults).
//   - Rendering with a caller supplied parameter order (StringFunc).
//   - IDNA conversion of the domain (ASCII, Unicode).
//   - Support for text and JSON marshalling.
//
// The parser follows a deliberately small grammar: it does not handle
// userinfo, IPv6 literals or relative reference resolution.
package uri

import (
	"encoding/json"
	"fmt"

	"braces.dev/errtrace"
	"golang.org/x/text/unicode/norm"
)

// Value is the value of a single URI part: Text for protocol, domain, port,
// path and fragment, Params for query.
type Value interface {
	isValue()
}

// Text is the value of a scalar URI part.
type Text string

func (Text) isValue()   {}
func (Params) isValue() {}

// Options assigns values to several parts at once. See URI.SetMany.
type Options map[Part]Value

// URI is an immutable, parsed URI. The zero value and a nil *URI both
// represent the empty URI.
type URI struct {
	rec record
}

// Parse decomposes s into a URI. It never fails.
//
// Parsing rules, applied in order:
//   - everything after the first '?' is the query, everything after the
//     first '#' of the remainder is the fragment;
//   - the text before the first "://" is the protocol, if "://" is present;
//   - the text after the first '/' is the path, without trailing slashes;
//   - the text before that is split at the first ':' into domain and port.
//
// Query names and values are percent-decoded; a repeated name keeps its last value.
func Parse[T ~string | ~[]byte](s T) *URI {
	return &URI{rec: parse(string(s))}
}

// ParseNormalized is like Parse but first normalizes s to Unicode
// Normalization Form C, so canonically equivalent inputs yield equal URIs.
func ParseNormalized[T ~string | ~[]byte](s T) *URI {
	return &URI{rec: parse(norm.NFC.String(string(s)))}
}

// ParseStringer parses the string form of s, such as a *url.URL or a
// configuration value. A nil s yields the empty URI.
func ParseStringer(s fmt.Stringer) *URI {
	if s == nil {
		return Parse("")
	}
	return Parse(s.String())
}

func (u *URI) record() record {
	if u == nil {
		return record{}
	}
	return u.rec
}

// Get returns the current value of part. The query is returned as a copy
// of the parameters which the caller is free to modify.
func (u *URI) Get(part Part) (Value, error) {
	if err := part.check(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	r := u.record()
	switch part {
	case Protocol:
		return Text(r.protocol), nil
	case Domain:
		return Text(r.domain), nil
	case Port:
		return Text(r.port), nil
	case Path:
		return Text(r.path), nil
	case Query:
		return r.params.Clone(), nil
	case Fragment:
		return Text(r.fragment), nil
	}
	panic("unreachable")
}

// Set returns a copy of u with part set to v.
//
// For Query, v must be Params and is overlaid on the existing parameters:
// new names are added, existing names are overwritten and all other
// parameters are kept. For every other part v must be Text and replaces the
// current value.
func (u *URI) Set(part Part, v Value) (*URI, error) {
	return errtrace.Wrap2(u.SetMany(Options{part: v}))
}

// SetMany returns a copy of u with every part in opts set as if by Set.
// All parts and values are checked before anything is applied; on error
// no URI is returned.
func (u *URI) SetMany(opts Options) (*URI, error) {
	for part, v := range opts {
		if err := part.check(); err != nil {
			return nil, errtrace.Wrap(err)
		}
		if err := checkValue(part, v); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	r := u.record().clone()
	for part, v := range opts {
		if part == Query {
			r.params = r.params.overlay(v.(Params))
			continue
		}
		t := string(v.(Text))
		switch part {
		case Protocol:
			r.protocol = t
		case Domain:
			r.domain = t
		case Port:
			r.port = t
		case Path:
			r.path = t
		case Fragment:
			r.fragment = t
		}
	}
	return &URI{rec: r}, nil
}

func checkValue(part Part, v Value) error {
	switch v.(type) {
	case Params:
		if part == Query {
			return nil
		}
	case Text:
		if part != Query {
			return nil
		}
	}
	return newValueKindError(part, v)
}

// Retain returns a copy of u whose query only holds the listed parameters,
// with their current values. Names that u does not have are ignored.
func (u *URI) Retain(names ...string) *URI {
	r := u.record()
	params := make(Params, len(names))
	for _, name := range names {
		if v, ok := r.params[name]; ok {
			params[name] = v
		}
	}
	r.params = params
	return &URI{rec: r}
}

// Defaults returns a copy of u where every parameter of defaults that u does
// not already have is added. Existing parameters are never overwritten.
func (u *URI) Defaults(defaults Params) *URI {
	r := u.record()
	r.params = defaults.overlay(r.params)
	return &URI{rec: r}
}

// Protocol returns the protocol (scheme), or "" if there is none.
func (u *URI) Protocol() string { return u.record().protocol }

// Domain returns the domain, or "" if there is none.
func (u *URI) Domain() string { return u.record().domain }

// Port returns the port text. It is not validated as a number.
func (u *URI) Port() string { return u.record().port }

// Path returns the path without leading or trailing slashes.
func (u *URI) Path() string { return u.record().path }

// Fragment returns the fragment without the leading '#'.
func (u *URI) Fragment() string { return u.record().fragment }

// Params returns a copy of the decoded query parameters.
func (u *URI) Params() Params { return u.record().params.Clone() }

// Param returns the decoded value of the named query parameter and whether
// it is present.
func (u *URI) Param(name string) (string, bool) {
	v, ok := u.record().params[name]
	return v, ok
}

// String renders u. The order of query parameters is unspecified; use
// StringFunc when a stable order is needed.
func (u *URI) String() string {
	return u.record().render(nil)
}

// StringFunc renders u with its query parameters sorted by cmp. Names and
// values are percent-encoded; empty parts are left out.
func (u *URI) StringFunc(cmp CompareFunc) string {
	return u.record().render(cmp)
}

// MarshalText implements the encoding.TextMarshaler interface. Parameters
// are ordered by name so the output is deterministic.
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.StringFunc(ByName)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (u *URI) UnmarshalText(data []byte) error {
	*u = *Parse(data)
	return nil
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as a JSON string.
func (u *URI) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(json.Marshal(u.StringFunc(ByName)))
}

// UnmarshalJSON implements the json.Unmarshaler interface. Any JSON string
// is accepted.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errtrace.Wrap(err)
	}
	*u = *Parse(s)
	return nil
}
