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

//nolint:testpackage // White-box tests for unexported helpers.
package uri

import "testing"

func TestSplitAround(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		sep       string
		wantLeft  string
		wantRight string
	}{
		{"not found", "abc", "?", "abc", ""},
		{"empty input", "", "?", "", ""},
		{"first occurrence", "a?b?c", "?", "a", "b?c"},
		{"leading separator", "?q", "?", "", "q"},
		{"trailing separator", "a?", "?", "a", ""},
		{"multi-char separator", "http://host/p", "://", "http", "host/p"},
		{"partial multi-char separator", "http:/host", "://", "http:/host", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			left, right := splitAround(tc.input, tc.sep)
			if left != tc.wantLeft || right != tc.wantRight {
				t.Errorf("splitAround(%q, %q) = (%q, %q), want (%q, %q)",
					tc.input, tc.sep, left, right, tc.wantLeft, tc.wantRight)
			}
		})
	}
}
