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
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"

	"rivaas.dev/formstate"
)

// Required fails for nil, the empty string, nil pointers and empty slices,
// arrays and maps. Whitespace counts as content; see [NotBlank].
func Required(errorMessage string) formstate.Rule {
	return formstate.ValueRule(errorMessage, func(value any) bool {
		n, ok := length(value)
		if ok {
			return n > 0
		}

		return !isNil(value)
	})
}

// NotBlank fails for values that are empty after trimming whitespace.
// Values other than strings are checked like [Required].
func NotBlank(errorMessage string) formstate.Rule {
	return formstate.ValueRule(errorMessage, func(value any) bool {
		if s, ok := value.(string); ok {
			return strings.TrimSpace(s) != ""
		}
		n, ok := length(value)
		if ok {
			return n > 0
		}

		return !isNil(value)
	})
}

// MinLen requires at least n characters for strings and at least n elements
// for slices, arrays and maps. Numbers are measured by their decimal form.
func MinLen(n int, errorMessage string) formstate.Rule {
	return formstate.ValueRule(errorMessage, func(value any) bool {
		l, ok := length(value)
		return ok && l >= n
	})
}

// MaxLen allows at most n characters or elements. See [MinLen].
func MaxLen(n int, errorMessage string) formstate.Rule {
	return formstate.ValueRule(errorMessage, func(value any) bool {
		l, ok := length(value)
		return ok && l <= n
	})
}

// Min requires a number greater than or equal to minimum.
// Integer, float and numeric string values are accepted.
func Min(minimum float64, errorMessage string) formstate.Rule {
	return formstate.ValueRule(errorMessage, func(value any) bool {
		f, ok := number(value)
		return ok && f >= minimum
	})
}

// Max requires a number less than or equal to maximum. See [Min].
func Max(maximum float64, errorMessage string) formstate.Rule {
	return formstate.ValueRule(errorMessage, func(value any) bool {
		f, ok := number(value)
		return ok && f <= maximum
	})
}

// Between requires a number in the closed range [minimum, maximum]. See [Min].
func Between(minimum, maximum float64, errorMessage string) formstate.Rule {
	return formstate.ValueRule(errorMessage, func(value any) bool {
		f, ok := number(value)
		return ok && f >= minimum && f <= maximum
	})
}

// length measures strings in runes and collections in elements.
// Scalars convertible to a string are measured by their string form.
func length(value any) (int, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case string:
		return utf8.RuneCountInString(v), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, true
		}
		return length(rv.Elem().Interface())
	case reflect.Struct, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return 0, false
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return 0, false
	}

	return utf8.RuneCountInString(s), true
}

// number converts value to a float64. Nil, booleans and non-numeric strings
// are not numbers.
func number(value any) (float64, bool) {
	switch value.(type) {
	case nil, bool:
		return 0, false
	}

	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, false
	}

	return f, true
}

// isNil reports whether value is nil or a nil pointer, map, slice or interface.
func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
