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


package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addressSchema = `{
	"type": "object",
	"properties": {
		"zip": {"type": "string", "pattern": "^[0-9]{5}$"},
		"email": {"type": "string", "format": "email"}
	},
	"required": ["zip"]
}`

type address struct {
	Zip   string `json:"zip"`
	Email string `json:"email,omitempty"`
}

func TestJSONSchema(t *testing.T) {
	t.Parallel()

	r, err := JSONSchema(addressSchema, "Enter a valid address.")
	require.NoError(t, err)
	assert.Equal(t, "Enter a valid address.", r.ErrorMessage)

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "struct", value: address{Zip: "12345"}, want: true},
		{name: "struct pointer", value: &address{Zip: "12345", Email: "a@b.io"}, want: true},
		{name: "map", value: map[string]any{"zip": "54321"}, want: true},
		{name: "bad pattern", value: address{Zip: "1234"}, want: false},
		{name: "bad format", value: address{Zip: "12345", Email: "nope"}, want: false},
		{name: "missing required", value: map[string]any{}, want: false},
		{name: "wrong type", value: "12345", want: false},
		{name: "nil", value: nil, want: false},
		{name: "not encodable", value: make(chan int), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, check(r, tt.value))
		})
	}
}

func TestJSONSchema_Scalar(t *testing.T) {
	t.Parallel()

	r := MustJSONSchema(`{"type": "integer", "minimum": 18}`, "Must be 18.")
	assert.True(t, check(r, 42))
	assert.False(t, check(r, 15))
	assert.False(t, check(r, 18.5))
	assert.False(t, check(r, "42"))
}

func TestJSONSchema_InvalidSchema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema string
	}{
		{name: "malformed json", schema: `{"type": `},
		{name: "invalid keyword value", schema: `{"type": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := JSONSchema(tt.schema, "x")
			require.Error(t, err)
			assert.Panics(t, func() { MustJSONSchema(tt.schema, "x") })
		})
	}
}
