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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value any
		want  bool
	}{
		{value: "jack@example.com", want: true},
		{value: "Jack.Smith@Example.COM", want: true},
		{value: "first.last+tag@sub.example.org", want: true},
		{value: `"quoted name"@example.com`, want: true},
		{value: "user@[192.168.0.1]", want: true},
		{value: "", want: false},
		{value: "jack", want: false},
		{value: "jack@", want: false},
		{value: "jack@example", want: false},
		{value: "ja ck@example.com", want: false},
		{value: "jack..smith@example.com", want: false},
		{value: 42, want: false},
	}

	r := Email("Email is invalid.")
	for _, tt := range tests {
		assert.Equal(t, tt.want, check(r, tt.value), "%v", tt.value)
	}
}

func TestPattern(t *testing.T) {
	t.Parallel()

	r := Pattern(regexp.MustCompile(`^[A-Z]{3}$`), "Use a three letter code.")
	assert.True(t, check(r, "EUR"))
	assert.False(t, check(r, "eur"))
	assert.False(t, check(r, "EURO"))
	assert.False(t, check(r, nil))
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	r := OneOf("Pick a size.", "s", "m", "l", 1)
	assert.True(t, check(r, "m"))
	assert.True(t, check(r, 1))
	assert.False(t, check(r, int64(1)))
	assert.False(t, check(r, "xl"))
	assert.False(t, check(OneOf("none"), "s"))
}
