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

// Package formstate keeps the per-field validity of form data checked against
// a declarative rule schema.
//
// # Getting Started
//
// A [Schema] maps field names to ordered [Rule] values. Each rule pairs an
// error message with a [Predicate] that receives the field value and the
// caller's ambient state:
//
//	schema := formstate.MustSchema(
//		formstate.Field("name",
//			rules.Required("Name is required."),
//			formstate.ValueRule("Cannot be bob.", func(v any) bool { return v != "bob" }),
//		),
//		formstate.Field("age", rules.Min(18, "Must be 18.")),
//	)
//
//	engine := formstate.MustNew(schema)
//	engine.Validate("name", "bob", nil) // false
//	engine.GetError("name")             // "Cannot be bob."
//	engine.IsValid()                    // false
//
// # Validation State
//
// The [Engine] holds a [State]: one [FieldResult] per schema field, all valid
// after construction or [Engine.ResetValidationState]. Every rule of a field
// runs on each evaluation and the messages of all failing rules are kept in
// declaration order. Operations differ only in how results reach the state:
//
//   - [Engine.Validate] stores the result of one field
//   - [Engine.ValidateIfTrue] stores it only when it is valid
//   - [Engine.ValidateAll] validates named fields (or all) from one ambient state
//   - [Engine.ValidateCustom] validates ad hoc key/value/state entries
//   - [Engine.ForceValidationState] installs a state without evaluation
//
// Fields that are not in the schema are always valid. Operations on them
// return true or an empty value and never create state entries.
//
// # Ambient State
//
// Predicates receive the ambient state untouched. [Engine.ValidateAll] reads
// field values from it: maps with string keys are indexed directly, structs
// are read by json tag (see [WithAmbientTag]). [DecodeAmbient] gives
// predicates a typed view of a map-shaped ambient state.
//
// # Input Events
//
// [Engine.ValidateOnBlur] and [Engine.ValidateOnChange] adapt an [Event]
// carrying an input name and value into engine calls, for UI layers that
// deliver change notifications.
//
// # Observing Changes
//
// Each change publishes a new State. Register a [StateObserver] with
// [WithStateObserver] to re-render on change, and [WithMeterProvider] to count
// validations with OpenTelemetry.
//
// # Errors
//
// [Engine.Err] turns the current state into an [*Error] holding one
// [FieldError] per failing rule. Both types unwrap to [ErrValidation]. Their
// HTTPStatus, Details and Code methods satisfy the interfaces of the
// rivaas.dev/errors formatters, so a server can render form failures as a
// 422 problem response without converting them:
//
//	if err := engine.Err(); err != nil {
//	    return err // formatted by rivaas.dev/errors
//	}
//
// # Thread Safety
//
// [Engine] instances are safe for concurrent use. The engine lock is not held
// while predicates or observers run. Observers are notified one change at a
// time, in the order the changes were made, so the last state an observer
// receives is always the engine's current state.
//
// # Rules
//
// The rivaas.dev/formstate/rules package provides common rule constructors,
// including go-playground/validator tag rules and JSON Schema rules.
package formstate
