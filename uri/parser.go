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

// record holds the decomposed components of a URI. Once wrapped by a URI it
// is never modified; derived URIs work on a clone.
type record struct {
	protocol string
	domain   string
	port     string
	path     string // no leading or trailing '/'
	params   Params // decoded names and values
	fragment string
}

// clone returns a copy of r with its own params map.
func (r record) clone() record {
	r.params = r.params.Clone()
	return r
}

// parse decomposes raw into a record. It accepts every input.
//
// The components are peeled off with splitAround in a fixed order, each step
// working on what the previous one left over:
//
//	raw            -> address ? rest
//	rest           -> query # fragment
//	address        -> protocol :// domainPortPath
//	domainPortPath -> domainPort / path
//	domainPort     -> domain : port
func parse(raw string) record {
	address, rest := splitAround(raw, "?")
	if rest == "" {
		// Re-insert the '#' so the query/fragment split below still finds it.
		address, rest = splitAround(raw, "#")
		rest = "#" + rest
	}

	query, fragment := splitAround(rest, "#")

	protocol, domainPortPath := splitAround(address, "://")
	if domainPortPath == "" {
		// Without "://" there is no protocol, even if a ':' introduces a port.
		domainPortPath, protocol = protocol, ""
	}

	domainPort, path := splitAround(domainPortPath, "/")
	path = strings.TrimRight(path, "/")
	domain, port := splitAround(domainPort, ":")

	return record{
		protocol: protocol,
		domain:   domain,
		port:     port,
		path:     path,
		params:   parseQuery(query),
		fragment: fragment,
	}
}

// parseQuery splits a raw query on '&' and decodes every name=value pair.
// Empty segments are skipped, a segment without '=' has an empty value and a
// repeated name keeps its last value.
func parseQuery(query string) Params {
	params := make(Params)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		k, v := splitAround(pair, "=")
		params[decodeComponent(k)] = decodeComponent(v)
	}
	return params
}
