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
	"regexp"
	"strings"

	"rivaas.dev/formstate"
)

// reEmail accepts a dotted or quoted local part and a domain name or bracketed IPv4 address.
var reEmail = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@` +
		`((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`,
)

// Pattern requires a string matching re. Non-string values fail.
//
// Example:
//
//	rules.Pattern(regexp.MustCompile(`^[A-Z]{3}$`), "Use a three letter code.")
func Pattern(re *regexp.Regexp, errorMessage string) formstate.Rule {
	return formstate.TypedRule(errorMessage, func(s string, _ any) bool {
		return re.MatchString(s)
	})
}

// Email requires a syntactically valid email address.
// The check is case-insensitive and does not contact any server.
func Email(errorMessage string) formstate.Rule {
	return formstate.TypedRule(errorMessage, func(s string, _ any) bool {
		return reEmail.MatchString(strings.ToLower(s))
	})
}

// OneOf requires the value to equal one of allowed.
// Values are compared with reflect.DeepEqual, so 1 and int64(1) differ.
func OneOf(errorMessage string, allowed ...any) formstate.Rule {
	return formstate.ValueRule(errorMessage, func(value any) bool {
		for _, a := range allowed {
			if reflect.DeepEqual(value, a) {
				return true
			}
		}

		return false
	})
}
