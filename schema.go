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
	"fmt"
	"slices"
)

// FieldRules declares the ordered rules of one schema field.
// Use [Field] to build one.
type FieldRules struct {
	Name  string
	Rules []Rule
}

// Field declares a schema field and its rules in evaluation order.
func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Name: name, Rules: rules}
}

// Schema is an ordered, read-only mapping of field names to rules.
//
// Field order is the declaration order passed to [NewSchema]. It controls the
// order of [Engine.ValidationErrors] and of batch validation; it has no effect
// on validity.
type Schema struct {
	order []string
	rules map[string][]Rule
}

// NewSchema builds a [Schema] from field declarations.
// NewSchema returns an error if a field name is empty or repeated, or if a rule
// has a nil predicate. A field with no rules is allowed and is always valid.
//
// Example:
//
//	schema, err := formstate.NewSchema(
//	    formstate.Field("name",
//	        formstate.ValueRule("Name is required.", func(v any) bool { return v != "" }),
//	    ),
//	    formstate.Field("age", rules.Min(18, "Must be 18.")),
//	)
func NewSchema(fields ...FieldRules) (*Schema, error) {
	s := &Schema{
		order: make([]string, 0, len(fields)),
		rules: make(map[string][]Rule, len(fields)),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, exists := s.rules[f.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		for i, r := range f.Rules {
			if r.Predicate == nil {
				return nil, fmt.Errorf("%w: field %q rule %d", ErrNilPredicate, f.Name, i)
			}
		}

		s.order = append(s.order, f.Name)
		s.rules[f.Name] = slices.Clone(f.Rules)
	}

	return s, nil
}

// MustSchema is like [NewSchema] but panics on error.
func MustSchema(fields ...FieldRules) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(fmt.Sprintf("formstate.MustSchema: %v", err))
	}

	return s
}

// SchemaFromMap builds a [Schema] from a map.
// Map iteration order is random, so fields are ordered by name.
func SchemaFromMap(m map[string][]Rule) (*Schema, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)

	fields := make([]FieldRules, 0, len(names))
	for _, name := range names {
		fields = append(fields, Field(name, m[name]...))
	}

	return NewSchema(fields...)
}

// Fields returns the field names in schema order.
func (s *Schema) Fields() []string {
	return slices.Clone(s.order)
}

// Has reports whether the schema declares field.
func (s *Schema) Has(field string) bool {
	_, ok := s.rules[field]
	return ok
}

// Rules returns a copy of the rules declared for field, or nil if the field is unknown.
func (s *Schema) Rules(field string) []Rule {
	return slices.Clone(s.rules[field])
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.order)
}
