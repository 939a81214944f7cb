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
	"reflect"

	"rivaas.dev/formstate"
)

// Each requires every element of a slice or array to satisfy pred.
// An empty collection passes; a value that is not a slice or array fails.
//
// Example:
//
//	allBob := rules.Each("Names all have to be bob.", func(name, _ any) bool {
//	    return name == "bob"
//	})
func Each(errorMessage string, pred formstate.Predicate) formstate.Rule {
	return formstate.NewRule(errorMessage, func(value, state any) bool {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false
		}
		for i := range rv.Len() {
			if !pred(rv.Index(i).Interface(), state) {
				return false
			}
		}

		return true
	})
}

// When applies r only if cond holds for the ambient state; otherwise the rule
// passes. The message of r is kept.
//
// Example:
//
//	rules.When(
//	    func(state any) bool { v, _ := formstate.Lookup(state, "dingo"); return v == true },
//	    formstate.ValueRule("Must be dingo.", func(v any) bool { return v == "dingo" }),
//	)
func When(cond func(state any) bool, r formstate.Rule) formstate.Rule {
	return formstate.NewRule(r.ErrorMessage, func(value, state any) bool {
		if !cond(state) {
			return true
		}

		return r.Predicate(value, state)
	})
}

// Not inverts r and reports errorMessage when r passes.
func Not(errorMessage string, r formstate.Rule) formstate.Rule {
	return formstate.NewRule(errorMessage, func(value, state any) bool {
		return !r.Predicate(value, state)
	})
}

// EqualsField requires the value to equal the field other of the ambient
// state, as read by [formstate.Lookup]. A missing field only matches nil.
//
// Example:
//
//	formstate.Field("confirm", rules.EqualsField("password", "Passwords must match."))
func EqualsField(other, errorMessage string) formstate.Rule {
	return formstate.NewRule(errorMessage, func(value, state any) bool {
		v, _ := formstate.Lookup(state, other)
		return reflect.DeepEqual(value, v)
	})
}
