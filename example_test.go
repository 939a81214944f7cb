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


package formstate_test

import (
	"errors"
	"fmt"

	"rivaas.dev/formstate"
	"rivaas.dev/formstate/rules"
)

func signupSchema() *formstate.Schema {
	return formstate.MustSchema(
		formstate.Field("name",
			rules.Required("Name is required."),
			formstate.ValueRule("Cannot be bob.", func(v any) bool { return v != "bob" }),
			rules.When(
				func(state any) bool { v, _ := formstate.Lookup(state, "dingo"); return v == true },
				formstate.ValueRule("Must be dingo.", func(v any) bool { return v == "dingo" }),
			),
		),
		formstate.Field("age", rules.Min(18, "Must be 18.")),
	)
}

// ExampleEngine_Validate demonstrates validating a single input.
func ExampleEngine_Validate() {
	engine := formstate.MustNew(signupSchema())

	ok := engine.Validate("name", "bob", map[string]any{"dingo": true})
	fmt.Println(ok)
	fmt.Println(engine.GetAllErrors("name"))
	fmt.Println(engine.GetError("name"))
	// Output:
	// false
	// [Cannot be bob. Must be dingo.]
	// Cannot be bob.
}

// ExampleEngine_ValidateAll demonstrates validating a whole form on submit.
func ExampleEngine_ValidateAll() {
	engine := formstate.MustNew(signupSchema())

	form := map[string]any{"name": "bob", "dingo": false, "age": 15}
	if !engine.ValidateAll(form) {
		for _, msg := range engine.ValidationErrors() {
			fmt.Println(msg)
		}
	}
	// Output:
	// Cannot be bob.
	// Must be 18.
}

// ExampleEngine_ValidateIfTrue demonstrates clearing an error while typing
// without showing new ones.
func ExampleEngine_ValidateIfTrue() {
	engine := formstate.MustNew(signupSchema())
	engine.Validate("name", "", nil)

	fmt.Println(engine.ValidateIfTrue("name", "bob", nil))
	fmt.Println(engine.GetError("name"))

	fmt.Println(engine.ValidateIfTrue("name", "jack", nil))
	fmt.Println(engine.IsValid())
	// Output:
	// false
	// Name is required.
	// true
	// true
}

// ExampleEngine_ValidateCustom demonstrates validating derived values.
func ExampleEngine_ValidateCustom() {
	schema := formstate.MustSchema(
		formstate.Field("namesAreAllBob", rules.Each("Names all have to be bob.", func(name, _ any) bool {
			return name == "bob"
		})),
	)
	engine := formstate.MustNew(schema)

	people := []map[string]any{{"name": "bob"}, {"name": "jack"}}
	names := make([]any, 0, len(people))
	for _, p := range people {
		names = append(names, p["name"])
	}

	ok := engine.ValidateCustom(formstate.CustomValidation{Key: "namesAreAllBob", Value: names})
	fmt.Println(ok, engine.GetError("namesAreAllBob"))
	// Output:
	// false Names all have to be bob.
}

// ExampleEngine_ValidateOnBlur demonstrates wiring an input's blur event.
func ExampleEngine_ValidateOnBlur() {
	engine := formstate.MustNew(signupSchema())
	onBlur := engine.ValidateOnBlur(map[string]any{"dingo": true})

	fmt.Println(onBlur(formstate.Event{Name: "name", Value: "chuck"}))
	fmt.Println(engine.GetError("name"))
	// Output:
	// false
	// Must be dingo.
}

// ExampleEngine_Err demonstrates converting the state into an error.
func ExampleEngine_Err() {
	engine := formstate.MustNew(signupSchema())
	engine.ValidateAll(map[string]any{"name": "", "age": 21})

	err := engine.Err()
	fmt.Println(errors.Is(err, formstate.ErrValidation))

	var verr *formstate.Error
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			fmt.Printf("%s: %s\n", f.Path, f.Message)
		}
	}
	// Output:
	// true
	// name: Name is required.
}

// ExampleEngine_ForceValidationState demonstrates showing server-side errors.
func ExampleEngine_ForceValidationState() {
	engine := formstate.MustNew(signupSchema())

	st := engine.ValidationState()
	st["name"] = formstate.FieldResult{IsValid: false, Errors: []string{"Name is taken."}}
	engine.ForceValidationState(st)

	fmt.Println(engine.IsValid(), engine.GetError("name"))

	engine.ResetValidationState()
	fmt.Println(engine.IsValid())
	// Output:
	// false Name is taken.
	// true
}

// ExampleDecodeState demonstrates restoring a saved state.
func ExampleDecodeState() {
	st, err := formstate.DecodeState([]byte(`{"age":{"isValid":false,"errors":["Must be 18."]}}`))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(st.Valid(), st["age"].Errors)
	// Output:
	// false [Must be 18.]
}
