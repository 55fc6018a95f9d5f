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

import "strings"

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isASCIIHexDigit checks if a byte is an ASCII hexadecimal digit.
func isASCIIHexDigit(c byte) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// isUnreserved checks if a character is in the unreserved set as defined by RFC 3986.
func isUnreserved(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// isComponentSafe reports whether c can appear unescaped in a query name or
// value. This is the unreserved set plus the marks "!*'()", which is the set
// browsers leave alone when encoding a URI component.
func isComponentSafe(c byte) bool {
	return isUnreserved(c) || strings.IndexByte("!*'()", c) >= 0
}
