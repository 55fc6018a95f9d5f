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

package uri

import (
	"strconv"

	"braces.dev/errtrace"
)

// Part identifies one of the six addressable components of a URI.
type Part uint8

// The addressable URI parts.
const (
	Protocol Part = iota
	Domain
	Port
	Path
	Query
	Fragment
)

var partNames = [...]string{
	Protocol: "protocol",
	Domain:   "domain",
	Port:     "port",
	Path:     "path",
	Query:    "query",
	Fragment: "fragment",
}

// Parts returns all valid parts in declaration order.
func Parts() []Part {
	return []Part{Protocol, Domain, Port, Path, Query, Fragment}
}

// ParsePart maps a part name to its Part. Matching is exact and case-sensitive;
// any other string yields an error wrapping ErrInvalidPart.
func ParsePart(s string) (Part, error) {
	for i, name := range partNames {
		if name == s {
			return Part(i), nil
		}
	}
	return 0, errtrace.Wrap(newInvalidPartError(s))
}

// String returns the lower-case name of the part.
func (p Part) String() string {
	if !p.valid() {
		return "Part(" + strconv.Itoa(int(p)) + ")"
	}
	return partNames[p]
}

func (p Part) valid() bool {
	return int(p) < len(partNames)
}

// check returns an InvalidPart error for values outside the enumeration.
func (p Part) check() error {
	if !p.valid() {
		return newInvalidPartError(p.String())
	}
	return nil
}
