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

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeState encodes st as JSON:
//
//	{"name":{"isValid":false,"errors":["Name is required."]}}
func EncodeState(st State) ([]byte, error) {
	if st == nil {
		st = State{}
	}

	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}

	return data, nil
}

// DecodeState decodes a state encoded by [EncodeState].
// Input starting with "{" is decoded as JSON; anything else as YAML with the
// same keys. Entries without an errors list get an empty one.
func DecodeState(data []byte) (State, error) {
	var st State
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, fmt.Errorf("decode state: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if st == nil {
		return State{}, nil
	}

	for name, r := range st {
		if r.Errors == nil {
			r.Errors = []string{}
			st[name] = r
		}
	}

	return st, nil
}

// Snapshot encodes the current state with [EncodeState].
func (e *Engine) Snapshot() ([]byte, error) {
	return EncodeState(e.snapshot())
}

// Restore decodes data with [DecodeState] and installs it with
// [Engine.ForceValidationState]. On error the state is left unchanged.
func (e *Engine) Restore(data []byte) error {
	st, err := DecodeState(data)
	if err != nil {
		return err
	}
	e.ForceValidationState(st)

	return nil
}
