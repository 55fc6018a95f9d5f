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

//nolint:testpackage // White-box tests for the part enumeration.
package uri

import (
	"errors"
	"testing"
)

func TestParsePart(t *testing.T) {
	for _, p := range Parts() {
		got, err := ParsePart(p.String())
		if err != nil {
			t.Errorf("ParsePart(%q) unexpected error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePart(%q) = %v, want %v", p.String(), got, p)
		}
	}

	for _, name := range []string{"", "protocol_", "domain_", "port_", "_path", "_fragment", "Query", "host"} {
		_, err := ParsePart(name)
		if !errors.Is(err, ErrInvalidPart) {
			t.Errorf("ParsePart(%q) error = %v, want %v", name, err, ErrInvalidPart)
		}
		var pe *PartError
		if !errors.As(err, &pe) {
			t.Errorf("ParsePart(%q) error of type %T, want *PartError", name, err)
		} else if pe.Part != name {
			t.Errorf("PartError.Part = %q, want %q", pe.Part, name)
		}
	}
}

func TestPartString(t *testing.T) {
	testCases := []struct {
		part Part
		want string
	}{
		{Protocol, "protocol"},
		{Domain, "domain"},
		{Port, "port"},
		{Path, "path"},
		{Query, "query"},
		{Fragment, "fragment"},
		{Part(42), "Part(42)"},
	}
	for _, tc := range testCases {
		if got := tc.part.String(); got != tc.want {
			t.Errorf("Part(%d).String() = %q, want %q", tc.part, got, tc.want)
		}
	}
}

func TestPartErrorMessage(t *testing.T) {
	err := newInvalidPartError("host")
	if got, want := err.Error(), "URI part error: unknown URI part 'host'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
