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

// Package rules provides ready-made [formstate.Rule] constructors.
//
// Every constructor takes the error message reported when the rule fails;
// messages are never generated. Rules are plain values and can be mixed
// freely with hand-written ones in a [formstate.Schema]:
//
//	schema := formstate.MustSchema(
//		formstate.Field("email",
//			rules.Required("Email is required."),
//			rules.Email("Email is invalid."),
//		),
//		formstate.Field("age",
//			rules.Min(18, "Must be 18."),
//		),
//		formstate.Field("username",
//			rules.Tag("username", "3 to 20 letters, digits or underscores."),
//		),
//	)
//
// # Families
//
//   - Presence and length: [Required], [NotBlank], [MinLen], [MaxLen]
//   - Numbers: [Min], [Max], [Between] (strings holding numbers are converted)
//   - Text: [Pattern], [Email], [OneOf]
//   - Composition: [Each], [When], [Not], [EqualsField]
//   - go-playground/validator tags: [Tag], [RegisterTag]
//   - JSON Schema: [JSONSchema], [MustJSONSchema]
//
// Values a rule cannot interpret (for example a struct passed to [Min]) fail
// the rule.
package rules
