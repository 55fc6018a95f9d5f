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
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// ASCII returns a copy of u whose domain is converted to its ASCII (punycode)
// form, suitable for DNS resolution. The domain is normalized to NFC first.
// If the domain cannot be converted it is kept unchanged.
func (u *URI) ASCII() *URI {
	return u.withDomain(func(domain string) (string, error) {
		return idna.ToASCII(norm.NFC.String(domain))
	})
}

// Unicode returns a copy of u whose punycode domain labels are converted back
// to Unicode. If the domain cannot be converted it is kept unchanged.
func (u *URI) Unicode() *URI {
	return u.withDomain(idna.ToUnicode)
}

func (u *URI) withDomain(conv func(string) (string, error)) *URI {
	r := u.record().clone()
	if r.domain == "" {
		return &URI{rec: r}
	}
	if domain, err := conv(r.domain); err == nil {
		r.domain = domain
	}
	return &URI{rec: r}
}
