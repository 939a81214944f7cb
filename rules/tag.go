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
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"rivaas.dev/formstate"
)

// Built-in regex patterns for custom tags (username, slug).
var (
	reUsername = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	reSlug     = regexp.MustCompile(`^[a-z0-9-]+$`)
)

var (
	tagValidator     *validator.Validate
	tagValidatorOnce sync.Once
	tagValidatorErr  error
	tagValidatorMu   sync.RWMutex // registration vs. validation
)

// tags returns the shared go-playground validator, creating it on first use.
func tags() (*validator.Validate, error) {
	tagValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return reUsername.MatchString(fl.Field().String())
		}); err != nil {
			tagValidatorErr = fmt.Errorf("failed to register username validator: %w", err)
			return
		}

		if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return reSlug.MatchString(fl.Field().String())
		}); err != nil {
			tagValidatorErr = fmt.Errorf("failed to register slug validator: %w", err)
			return
		}

		tagValidator = v
	})

	return tagValidator, tagValidatorErr
}

// RegisterTag adds a custom go-playground/validator tag usable by [Tag].
// Register tags before building rules that use them.
//
// Example:
//
//	err := rules.RegisterTag("phone", func(fl validator.FieldLevel) bool {
//	    return phoneRegex.MatchString(fl.Field().String())
//	})
func RegisterTag(name string, fn validator.Func) error {
	v, err := tags()
	if err != nil {
		return err
	}

	tagValidatorMu.Lock()
	defer tagValidatorMu.Unlock()

	if err := v.RegisterValidation(name, fn); err != nil {
		return fmt.Errorf("register custom tag %q: %w", name, err)
	}

	return nil
}

// Tag checks the value with a go-playground/validator tag expression such as
// "required,email" or "min=3,max=20". Besides the standard tags, "username"
// and "slug" are available, plus any tag added with [RegisterTag].
//
// The value fails if the tag rejects it, if the tag is unknown, or if the tag
// does not apply to the value's type.
//
// Example:
//
//	formstate.Field("website", rules.Tag("omitempty,url", "Enter a full URL."))
func Tag(tag, errorMessage string) formstate.Rule {
	return formstate.ValueRule(errorMessage, func(value any) bool {
		return checkTag(value, tag)
	})
}

// checkTag runs tag against value. The validator panics on unknown tags and on
// tags used with unsupported kinds; both count as failures.
func checkTag(value any, tag string) (ok bool) {
	v, err := tags()
	if err != nil {
		return false
	}

	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	tagValidatorMu.RLock()
	defer tagValidatorMu.RUnlock()

	return v.Var(value, tag) == nil
}
