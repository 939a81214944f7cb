// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package formstate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation is a sentinel error for validation failures.
// Use errors.Is(err, ErrValidation) to check if an error came from [Engine.Err].
var ErrValidation = errors.New("validation")

// Predefined configuration errors.
var (
	// ErrNilSchema is returned by [New] when no schema is given.
	ErrNilSchema = errors.New("schema is nil")

	// ErrEmptyFieldName is returned when a schema field has no name.
	ErrEmptyFieldName = errors.New("field name is empty")

	// ErrDuplicateField is returned when a schema declares the same field twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrNilPredicate is returned when a schema rule has no predicate.
	ErrNilPredicate = errors.New("rule predicate is nil")

	// ErrUnsupportedAmbient is reported when an ambient state cannot hold named fields.
	ErrUnsupportedAmbient = errors.New("unsupported ambient state")
)

// FieldError is one failed rule of one field.
type FieldError struct {
	Path    string `json:"path"`    // Field name
	Code    string `json:"code"`    // Stable code, always "rule"
	Message string `json:"message"` // Rule error message
	Index   int    `json:"index"`   // Position of the message in the field's error list
}

// Error returns "path: message", or just the message if path is empty.
func (e FieldError) Error() string {
	if e.Path == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (e FieldError) Unwrap() error {
	return ErrValidation
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (e FieldError) HTTPStatus() int {
	return 422 // Unprocessable Entity
}

// Error collects the failures of an engine state.
// It is produced by [Engine.Err] and [StateError].
//
//nolint:recvcheck // Error must use value receiver for error interface compatibility, mutating methods use pointer
type Error struct {
	Fields []FieldError `json:"errors"`
}

// Error returns a formatted error message.
func (v Error) Error() string {
	if len(v.Fields) == 0 {
		return ""
	}
	if len(v.Fields) == 1 {
		return v.Fields[0].Error()
	}

	msgs := make([]string, 0, len(v.Fields))
	for _, err := range v.Fields {
		msgs = append(msgs, err.Error())
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (v Error) Unwrap() error {
	return ErrValidation
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (v Error) HTTPStatus() int {
	return 422 // Unprocessable Entity
}

// Details implements rivaas.dev/errors.ErrorDetails.
func (v Error) Details() any {
	return v.Fields
}

// Code implements rivaas.dev/errors.ErrorCode.
func (v Error) Code() string {
	return "validation_error"
}

// Add appends a [FieldError].
func (v *Error) Add(path, message string, index int) {
	v.Fields = append(v.Fields, FieldError{
		Path:    path,
		Code:    "rule",
		Message: message,
		Index:   index,
	})
}

// HasErrors returns true if there are any errors.
func (v Error) HasErrors() bool {
	return len(v.Fields) > 0
}

// Has reports whether path has at least one error.
func (v Error) Has(path string) bool {
	for _, f := range v.Fields {
		if f.Path == path {
			return true
		}
	}

	return false
}

// GetField returns the first [FieldError] for path, or nil if there is none.
func (v Error) GetField(path string) *FieldError {
	for _, f := range v.Fields {
		if f.Path == path {
			return &f
		}
	}

	return nil
}

// Messages returns every message recorded for path in order.
func (v Error) Messages(path string) []string {
	var msgs []string
	for _, f := range v.Fields {
		if f.Path == path {
			msgs = append(msgs, f.Message)
		}
	}

	return msgs
}

// Sort sorts errors by path, keeping each field's messages in rule order.
func (v *Error) Sort() {
	sort.SliceStable(v.Fields, func(i, j int) bool {
		if v.Fields[i].Path != v.Fields[j].Path {
			return v.Fields[i].Path < v.Fields[j].Path
		}

		return v.Fields[i].Index < v.Fields[j].Index
	})
}

// StateError converts the invalid entries of st into an [*Error].
// Fields are visited in the given order; entries of st not listed in order
// follow, sorted by name. Names in order that st does not hold are skipped.
// It returns nil if st is valid.
func StateError(st State, order []string) error {
	var result Error
	seen := make(map[string]bool, len(order))

	for _, name := range order {
		seen[name] = true
		if r, ok := st[name]; ok {
			addFieldErrors(&result, name, r)
		}
	}

	var rest Error
	for name, r := range st {
		if !seen[name] {
			addFieldErrors(&rest, name, r)
		}
	}
	rest.Sort()
	result.Fields = append(result.Fields, rest.Fields...)

	if !result.HasErrors() {
		return nil
	}

	return &result
}

// addFieldErrors records every message of an invalid result.
// An invalid result without messages still produces one entry.
func addFieldErrors(e *Error, name string, r FieldResult) {
	if r.IsValid {
		return
	}
	if len(r.Errors) == 0 {
		e.Add(name, "is invalid", 0)
		return
	}
	for i, msg := range r.Errors {
		e.Add(name, msg, i)
	}
}
