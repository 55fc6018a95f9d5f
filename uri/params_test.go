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

//nolint:testpackage // White-box tests for parameter helpers.
package uri

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParamsClone(t *testing.T) {
	var nilParams Params
	if c := nilParams.Clone(); c == nil || len(c) != 0 {
		t.Errorf("nil Params.Clone() = %#v, want empty non-nil map", c)
	}

	src := Params{"a": "1"}
	c := src.Clone()
	c["a"] = "2"
	c["b"] = "3"
	if diff := cmp.Diff(src, Params{"a": "1"}); diff != "" {
		t.Errorf("source changed by clone mutation (-got +want):\n%s", diff)
	}
}

func TestParamsOverlay(t *testing.T) {
	base := Params{"a": "1", "b": "2"}
	got := base.overlay(Params{"b": "200", "c": "300"})
	if diff := cmp.Diff(got, Params{"a": "1", "b": "200", "c": "300"}); diff != "" {
		t.Errorf("overlay mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(base, Params{"a": "1", "b": "2"}); diff != "" {
		t.Errorf("overlay changed its receiver (-got +want):\n%s", diff)
	}
}

func TestCompareFuncs(t *testing.T) {
	params := []Param{{"2", "b"}, {"10", "a"}, {"x", "c"}, {"1", "z"}}

	testCases := []struct {
		name string
		cmp  CompareFunc
		want []string
	}{
		{"ByName", ByName, []string{"1", "10", "2", "x"}},
		{"ByValue", ByValue, []string{"10", "2", "x", "1"}},
		{"ByNumericName", ByNumericName, []string{"1", "2", "10", "x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sorted := slices.Clone(params)
			slices.SortFunc(sorted, tc.cmp)
			var names []string
			for _, p := range sorted {
				names = append(names, p.Name)
			}
			if diff := cmp.Diff(names, tc.want); diff != "" {
				t.Errorf("sorted names mismatch (-got +want):\n%s", diff)
			}
		})
	}
}
