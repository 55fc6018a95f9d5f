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
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// encodeComponent percent-encodes every octet of s that is not component-safe.
// Hex digits are written in upper case.
func encodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isComponentSafe(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

// decodeComponent decodes percent-encoded octets in s. It never fails: a
// contiguous run of escapes is decoded only when it forms valid UTF-8, and
// malformed or truncated escapes are kept verbatim. A '+' is not a space.
func decodeComponent(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}

		start := i
		var decoded []byte
		// Find a contiguous block of percent-encoded octets.
		for i+2 < len(s) && s[i] == '%' && isASCIIHexDigit(s[i+1]) && isASCIIHexDigit(s[i+2]) {
			decoded = append(decoded, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 3
		}

		// The inner loop did not advance: a lone or malformed '%'.
		if i == start {
			b.WriteByte('%')
			i++
			continue
		}

		if utf8.Valid(decoded) {
			b.Write(decoded)
		} else {
			b.WriteString(s[start:i])
		}
	}
	return b.String()
}

func unhex(c byte) byte {
	switch {
	case isASCIIDigit(c):
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
