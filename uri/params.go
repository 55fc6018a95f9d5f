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
	"cmp"
	"strconv"
	"strings"
)

// Params maps decoded query parameter names to decoded values.
type Params map[string]string

// Clone returns a copy of p that shares no storage with it.
// The result is never nil.
func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// overlay returns a copy of p with the entries of top added on top of it;
// top wins on conflict.
func (p Params) overlay(top Params) Params {
	c := make(Params, len(p)+len(top))
	for k, v := range p {
		c[k] = v
	}
	for k, v := range top {
		c[k] = v
	}
	return c
}

// Param is a single query parameter as seen by a CompareFunc.
type Param struct {
	Name  string
	Value string
}

// CompareFunc orders query parameters when a URI is rendered. It returns a
// negative number when a sorts before b, a positive number when a sorts after
// b and zero otherwise.
type CompareFunc func(a, b Param) int

// ByName orders parameters lexically by name.
func ByName(a, b Param) int {
	return strings.Compare(a.Name, b.Name)
}

// ByValue orders parameters lexically by value, then by name.
func ByValue(a, b Param) int {
	if c := strings.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	return ByName(a, b)
}

// ByNumericName orders parameters whose names are integers numerically.
// Integer names sort before other names, which fall back to ByName.
func ByNumericName(a, b Param) int {
	x, xerr := strconv.ParseInt(a.Name, 10, 64)
	y, yerr := strconv.ParseInt(b.Name, 10, 64)
	xok, yok := xerr == nil, yerr == nil
	switch {
	case xok && yok:
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
		return ByName(a, b)
	case xok:
		return -1
	case yok:
		return 1
	default:
		return ByName(a, b)
	}
}
