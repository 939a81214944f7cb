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

import "strings"

// Evaluate runs every rule against value and state and returns the combined result.
//
// All rules run, even after a failure. The result is valid only if every
// predicate returned true, and Errors lists the messages of the failing rules in
// the order the rules were declared. An empty rule list is always valid.
//
// Example:
//
//	res := formstate.Evaluate(schema.Rules("name"), "bob", nil)
//	// res.IsValid == false, res.Errors == []string{"Cannot be bob."}
func Evaluate(rules []Rule, value, state any) FieldResult {
	errs := []string{}
	for _, r := range rules {
		if !r.Predicate(value, state) {
			errs = append(errs, r.ErrorMessage)
		}
	}

	return FieldResult{IsValid: len(errs) == 0, Errors: errs}
}

// trimValue trims surrounding whitespace from string values.
// Other values are returned unchanged.
func trimValue(value any) any {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case *string:
		if v == nil {
			return value
		}
		return strings.TrimSpace(*v)
	default:
		return value
	}
}
