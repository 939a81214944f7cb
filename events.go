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

// Event is an input change: the name of the input and its new value.
type Event struct {
	Name  string
	Value any
}

// ValidateOnBlur returns a handler that validates the event's field with
// [Engine.Validate] whenever an input loses focus. The handler returns the
// validation result.
//
// The event value is laid over ambient before the rules run: a
// map[string]any ambient state is copied with Name set to Value, so
// cross-field rules see the new input. Other ambient states are passed as is.
//
// Example:
//
//	onBlur := engine.ValidateOnBlur(form)
//	onBlur(formstate.Event{Name: "name", Value: "bob"})
func (e *Engine) ValidateOnBlur(ambient any) func(Event) bool {
	return func(ev Event) bool {
		return e.Validate(ev.Name, ev.Value, withValue(ambient, ev.Name, ev.Value))
	}
}

// ValidateOnChange returns a handler that runs [Engine.ValidateIfTrue] for the
// event's field and then calls onChange, returning its result unchanged. The
// ambient state is extended with the event value as in [Engine.ValidateOnBlur].
// A nil onChange makes the handler return nil.
//
// Example:
//
//	onChange := engine.ValidateOnChange(func(ev formstate.Event) any {
//	    form[ev.Name] = ev.Value
//	    return form
//	}, form)
func (e *Engine) ValidateOnChange(onChange func(Event) any, ambient any) func(Event) any {
	return func(ev Event) any {
		e.ValidateIfTrue(ev.Name, ev.Value, withValue(ambient, ev.Name, ev.Value))
		if onChange == nil {
			return nil
		}

		return onChange(ev)
	}
}
