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
	"errors"
	"fmt"
)

var (
	// ErrInvalidPart is reported when a part name (or a Part value) is not one
	// of protocol, domain, port, path, query or fragment.
	ErrInvalidPart = errors.New("unknown URI part")
	// ErrValueKind is reported when a value of the wrong kind is supplied for a
	// part: query takes Params, every other part takes Text.
	ErrValueKind = errors.New("wrong value kind for URI part")
)

// PartError is the error type returned by the accessors of this package.
// It names the offending part and wraps one of the sentinel errors above.
type PartError struct {
	Part string
	Err  error
}

// Error returns the string representation of the part error.
func (e *PartError) Error() string {
	return fmt.Sprintf("URI part error: %s '%s'", e.Err, e.Part)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *PartError) Unwrap() error {
	return e.Err
}

// newInvalidPartError creates a PartError for an unrecognized part name.
func newInvalidPartError(part string) *PartError {
	return &PartError{Part: part, Err: ErrInvalidPart}
}

// newValueKindError creates a PartError for a value that does not fit its part.
func newValueKindError(p Part, v Value) *PartError {
	return &PartError{Part: p.String(), Err: fmt.Errorf("%w: got %T", ErrValueKind, v)}
}
