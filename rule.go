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

// Predicate reports whether value satisfies a rule.
// The state argument is the ambient state supplied by the caller; it may be nil
// and must not be modified.
//
// Predicates are assumed to be total and free of side effects. A panicking
// predicate is not recovered by the engine.
type Predicate func(value, state any) bool

// Rule pairs a [Predicate] with the message reported when it fails.
// Rules are values and are never modified once placed in a [Schema].
//
// Example:
//
//	notBob := formstate.Rule{
//	    ErrorMessage: "Cannot be bob.",
//	    Predicate: func(value, _ any) bool {
//	        return value != "bob"
//	    },
//	}
type Rule struct {
	ErrorMessage string
	Predicate    Predicate
}

// NewRule returns a [Rule] with the given message and predicate.
func NewRule(errorMessage string, predicate Predicate) Rule {
	return Rule{ErrorMessage: errorMessage, Predicate: predicate}
}

// ValueRule returns a [Rule] whose predicate only inspects the value.
func ValueRule(errorMessage string, fn func(value any) bool) Rule {
	if fn == nil {
		return Rule{ErrorMessage: errorMessage}
	}

	return Rule{
		ErrorMessage: errorMessage,
		Predicate: func(value, _ any) bool {
			return fn(value)
		},
	}
}

// TypedRule returns a [Rule] for values of type T.
// A value that is not a T fails the rule without calling fn.
//
// Example:
//
//	adult := formstate.TypedRule("Must be 18.", func(age int, _ any) bool {
//	    return age >= 18
//	})
func TypedRule[T any](errorMessage string, fn func(value T, state any) bool) Rule {
	if fn == nil {
		return Rule{ErrorMessage: errorMessage}
	}

	return Rule{
		ErrorMessage: errorMessage,
		Predicate: func(value, state any) bool {
			v, ok := value.(T)
			if !ok {
				return false
			}

			return fn(v, state)
		},
	}
}
