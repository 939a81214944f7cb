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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldError(t *testing.T) {
	t.Parallel()

	fe := FieldError{Path: "name", Code: "rule", Message: "Cannot be bob."}
	assert.Equal(t, "name: Cannot be bob.", fe.Error())
	assert.Equal(t, "Cannot be bob.", FieldError{Message: "Cannot be bob."}.Error())
	assert.True(t, errors.Is(fe, ErrValidation))
	assert.Equal(t, 422, fe.HTTPStatus())
}

func TestError(t *testing.T) {
	t.Parallel()

	var e Error
	assert.False(t, e.HasErrors())
	assert.Empty(t, e.Error())

	e.Add("name", "Cannot be bob.", 0)
	assert.Equal(t, "name: Cannot be bob.", e.Error())

	e.Add("age", "Must be 18.", 0)
	e.Add("name", "Must be dingo.", 1)

	assert.True(t, e.HasErrors())
	assert.Equal(t, "validation failed: name: Cannot be bob.; age: Must be 18.; name: Must be dingo.", e.Error())
	assert.True(t, e.Has("age"))
	assert.False(t, e.Has("email"))
	assert.Equal(t, []string{"Cannot be bob.", "Must be dingo."}, e.Messages("name"))
	assert.Nil(t, e.Messages("email"))
	require.NotNil(t, e.GetField("age"))
	assert.Equal(t, "Must be 18.", e.GetField("age").Message)
	assert.Nil(t, e.GetField("email"))
	assert.Equal(t, 422, e.HTTPStatus())
	assert.Equal(t, "validation_error", e.Code())
	assert.Equal(t, e.Fields, e.Details())
	assert.True(t, errors.Is(e, ErrValidation))

	e.Sort()
	assert.Equal(t, []string{"age", "name", "name"}, []string{e.Fields[0].Path, e.Fields[1].Path, e.Fields[2].Path})
	assert.Equal(t, "Cannot be bob.", e.Fields[1].Message)
}

func TestError_JSON(t *testing.T) {
	t.Parallel()

	var e Error
	e.Add("name", "Name is required.", 0)

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":[{"path":"name","code":"rule","message":"Name is required.","index":0}]}`, string(data))
}

func TestStateError(t *testing.T) {
	t.Parallel()

	t.Run("valid state", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, StateError(State{"a": validResult()}, []string{"a"}))
		require.NoError(t, StateError(nil, nil))
	})

	t.Run("ordered then sorted extras", func(t *testing.T) {
		t.Parallel()
		st := State{
			"z":     {Errors: []string{"z1"}},
			"b":     {Errors: []string{"b1", "b2"}},
			"a":     {Errors: []string{"a1"}},
			"extra": {},
			"ok":    validResult(),
		}
		err := StateError(st, []string{"z", "missing", "ok"})
		require.Error(t, err)

		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []FieldError{
			{Path: "z", Code: "rule", Message: "z1", Index: 0},
			{Path: "a", Code: "rule", Message: "a1", Index: 0},
			{Path: "b", Code: "rule", Message: "b1", Index: 0},
			{Path: "b", Code: "rule", Message: "b2", Index: 1},
			{Path: "extra", Code: "rule", Message: "is invalid", Index: 0},
		}, verr.Fields)
	})
}

// Interfaces consumed by the rivaas.dev/errors formatters.
type (
	httpStatuser interface{ HTTPStatus() int }
	detailer     interface{ Details() any }
	coder        interface{ Code() string }
)

func TestEngine_ErrSatisfiesFormatterInterfaces(t *testing.T) {
	t.Parallel()

	e := MustNew(MustSchema(Field("age", TypedRule("Must be 18.", func(v int, _ any) bool { return v >= 18 }))))
	e.Validate("age", 3, nil)
	err := e.Err()
	require.Error(t, err)

	var status httpStatuser
	require.ErrorAs(t, err, &status)
	assert.Equal(t, 422, status.HTTPStatus())

	var details detailer
	require.ErrorAs(t, err, &details)
	assert.Equal(t, []FieldError{{Path: "age", Code: "rule", Message: "Must be 18.", Index: 0}}, details.Details())

	var code coder
	require.ErrorAs(t, err, &code)
	assert.Equal(t, "validation_error", code.Code())
}
