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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/formstate"
)

// JSONSchema returns a rule that checks the value against a JSON Schema.
// The schema is compiled once, with format and content assertions enabled.
// The value is converted to its JSON form before the check, so structs are
// matched by their json tags. Values that cannot be encoded fail.
//
// Example:
//
//	address, err := rules.JSONSchema(`{
//	    "type": "object",
//	    "properties": {"zip": {"type": "string", "pattern": "^[0-9]{5}$"}},
//	    "required": ["zip"]
//	}`, "Enter a valid address.")
func JSONSchema(schemaJSON, errorMessage string) (formstate.Rule, error) {
	schema, err := compileSchema(schemaJSON)
	if err != nil {
		return formstate.Rule{}, err
	}

	return formstate.ValueRule(errorMessage, func(value any) bool {
		data, err := toJSONValue(value)
		if err != nil {
			return false
		}

		return schema.Validate(data) == nil
	}), nil
}

// MustJSONSchema is like [JSONSchema] but panics if the schema does not compile.
func MustJSONSchema(schemaJSON, errorMessage string) formstate.Rule {
	r, err := JSONSchema(schemaJSON, errorMessage)
	if err != nil {
		panic(fmt.Sprintf("rules.MustJSONSchema: %v", err))
	}

	return r
}

// compileSchema compiles a JSON Schema from a JSON string.
func compileSchema(schemaJSON string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()
	compiler.AssertContent()

	schemaDoc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid schema JSON: %w", err)
	}

	const schemaURL = "field.json"
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return schema, nil
}

// toJSONValue round-trips value through JSON to obtain the generic form the
// schema validator expects.
func toJSONValue(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}
