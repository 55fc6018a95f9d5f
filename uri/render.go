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
	"slices"
	"strings"
)

// render serializes r. Query parameters are ordered with cmp when it is
// non-nil; otherwise their order is unspecified. Empty components are
// omitted together with their separators.
func (r record) render(cmp CompareFunc) string {
	var b strings.Builder
	b.Grow(len(r.protocol) + len(r.domain) + len(r.port) + len(r.path) + len(r.fragment) + 8)

	surround(&b, "", r.protocol, "://")
	surround(&b, "", r.domain, "")
	surround(&b, ":", r.port, "")
	surround(&b, "/", r.path, "")
	surround(&b, "?", r.renderQuery(cmp), "")
	surround(&b, "#", r.fragment, "")

	return b.String()
}

// renderQuery encodes the params as name=value pairs joined by '&'.
func (r record) renderQuery(cmp CompareFunc) string {
	if len(r.params) == 0 {
		return ""
	}

	pairs := make([]Param, 0, len(r.params))
	for k, v := range r.params {
		pairs = append(pairs, Param{Name: k, Value: v})
	}
	if cmp != nil {
		slices.SortFunc(pairs, cmp)
	}

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(encodeComponent(p.Name))
		b.WriteByte('=')
		b.WriteString(encodeComponent(p.Value))
	}
	return b.String()
}

// surround writes left+s+right to b unless s is empty.
func surround(b *strings.Builder, left, s, right string) {
	if s == "" {
		return
	}
	b.WriteString(left)
	b.WriteString(s)
	b.WriteString(right)
}
