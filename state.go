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

import "maps"

// FieldResult is the outcome of evaluating every rule of one field.
// Errors holds the message of each failing rule in declaration order and is
// empty when IsValid is true.
type FieldResult struct {
	IsValid bool     `json:"isValid" yaml:"isValid"`
	Errors  []string `json:"errors" yaml:"errors"`
}

// validResult is the default result of a field that has not failed yet.
func validResult() FieldResult {
	return FieldResult{IsValid: true, Errors: []string{}}
}

// clone copies the error slice so the result shares no memory with r.
func (r FieldResult) clone() FieldResult {
	errs := make([]string, len(r.Errors))
	copy(errs, r.Errors)

	return FieldResult{IsValid: r.IsValid, Errors: errs}
}

// State maps field names to their current [FieldResult].
// The engine never modifies a State after publishing it; every mutation
// produces a new map.
type State map[string]FieldResult

// NewState returns the initial state for schema: every field valid with no errors.
func NewState(schema *Schema) State {
	st := make(State, schema.Len())
	for _, name := range schema.order {
		st[name] = validResult()
	}

	return st
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	if s == nil {
		return nil
	}
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v.clone()
	}

	return out
}

// Valid reports whether every entry is valid. An empty state is valid.
func (s State) Valid() bool {
	for _, r := range s {
		if !r.IsValid {
			return false
		}
	}

	return true
}

// Field returns the result stored for name.
func (s State) Field(name string) (FieldResult, bool) {
	r, ok := s[name]
	return r, ok
}

// Merge returns a new State holding current with every entry of partial
// written over it. Neither argument is modified.
func Merge(current, partial State) State {
	out := make(State, len(current)+len(partial))
	maps.Copy(out, current)
	maps.Copy(out, partial)

	return out
}
