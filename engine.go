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
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Engine owns a [Schema] and the validity [State] derived from it.
//
// Use [New] or [MustNew] to create an Engine. All operations are synchronous.
// Validation operations evaluate rules and fold the results into the state;
// query operations read the current state. Fields that are not part of the
// schema are always valid: operations on them return true or an empty value
// and never change the state.
//
// Every change publishes a new State value, so snapshots returned by
// [Engine.ValidationState] are never modified afterwards. Engine is safe for
// concurrent use; predicates and observers run without the engine lock held.
//
// Example:
//
//	engine := formstate.MustNew(schema)
//
//	engine.Validate("name", "", form)
//	engine.GetError("name") // "Name is required."
//	engine.IsValid()        // false
type Engine struct {
	schema *Schema
	cfg    *config
	logger *slog.Logger
	ins    *instruments

	mu    sync.RWMutex
	state State

	// notifyMu serializes observer notification in commit order.
	notifyMu sync.Mutex
}

// New creates an [Engine] for schema with every field valid.
// New returns an error if schema is nil or the configuration is invalid.
//
// Example:
//
//	engine, err := formstate.New(schema,
//	    formstate.WithLogger(logger),
//	    formstate.WithTrimStrings(true),
//	)
//	if err != nil {
//	    return fmt.Errorf("failed to create form engine: %w", err)
//	}
func New(schema *Schema, opts ...Option) (*Engine, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}

	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ins, err := newInstruments(cfg.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("initialize metrics: %w", err)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		schema: schema,
		cfg:    cfg,
		logger: logger,
		ins:    ins,
		state:  NewState(schema),
	}, nil
}

// MustNew creates an [Engine] for schema.
// Panics if schema is nil or the configuration is invalid.
func MustNew(schema *Schema, opts ...Option) *Engine {
	e, err := New(schema, opts...)
	if err != nil {
		panic(fmt.Sprintf("formstate.MustNew: %v", err))
	}

	return e
}

// Schema returns the engine's schema.
func (e *Engine) Schema() *Schema {
	return e.schema
}

// run evaluates the rules of a known field.
func (e *Engine) run(field string, value, ambient any) FieldResult {
	if e.cfg.trimStrings {
		value = trimValue(value)
	}

	r := Evaluate(e.schema.rules[field], value, ambient)
	e.logger.Debug("field evaluated",
		"field", field,
		"valid", r.IsValid,
		"errors", r.Errors,
	)

	return r
}

// commit replaces the state with next(current) and notifies observers.
// notifyMu is taken before mu is released, so notifications follow the order
// in which states were installed.
func (e *Engine) commit(next func(current State) State) {
	e.mu.Lock()
	st := next(e.state)
	e.state = st
	if len(e.cfg.observers) == 0 {
		e.mu.Unlock()
		return
	}
	e.notifyMu.Lock()
	e.mu.Unlock()
	defer e.notifyMu.Unlock()

	for _, observe := range e.cfg.observers {
		observe(st.Clone())
	}
}

// snapshot returns the current state without copying it.
// Callers must not modify the result.
func (e *Engine) snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state
}

// skipUnknown logs that field was ignored by op.
func (e *Engine) skipUnknown(op, field string) {
	e.logger.Debug("unknown field skipped", "operation", op, "field", field)
}

// Evaluate runs the rules of field without changing the state.
// An unknown field yields a valid result.
func (e *Engine) Evaluate(field string, value, ambient any) FieldResult {
	if !e.schema.Has(field) {
		return validResult()
	}

	return e.run(field, value, ambient)
}

// Validate evaluates value against the rules of field and stores the result,
// replacing any earlier result for field. The ambient state is passed to every
// predicate and is not modified. Validate returns whether the new result is
// valid; for an unknown field it returns true and leaves the state unchanged.
//
// Example:
//
//	ok := engine.Validate("name", "bob", form)
//	// ok == false, engine.GetAllErrors("name") == []string{"Cannot be bob."}
func (e *Engine) Validate(field string, value, ambient any) bool {
	if !e.schema.Has(field) {
		e.skipUnknown(opValidate, field)
		return true
	}

	r := e.run(field, value, ambient)
	e.commit(func(cur State) State {
		return Merge(cur, State{field: r})
	})

	e.ins.recordFailures(field, r)
	e.ins.recordOperation(opValidate, r.IsValid)

	return r.IsValid
}

// ValidateIfTrue is like [Engine.Validate] but stores the result only when it
// is valid. An invalid result leaves the state untouched, so a field shows no
// new error until it passes once. The validity of the new result is returned
// either way.
func (e *Engine) ValidateIfTrue(field string, value, ambient any) bool {
	if !e.schema.Has(field) {
		e.skipUnknown(opValidateIfTrue, field)
		return true
	}

	r := e.run(field, value, ambient)
	if r.IsValid {
		e.commit(func(cur State) State {
			return Merge(cur, State{field: r})
		})
	}

	e.ins.recordFailures(field, r)
	e.ins.recordOperation(opValidateIfTrue, r.IsValid)

	return r.IsValid
}

// ValidateAll validates fields using their values in ambient, which also serves
// as the ambient state of every predicate. With no fields, every schema field
// is validated in schema order. The results are stored as one batch; fields
// outside the batch keep their current result. Unknown fields are skipped.
//
// ValidateAll returns whether every field of the batch is valid, which differs
// from [Engine.IsValid] when the batch is a subset and another field is
// invalid.
//
// Example:
//
//	engine.ValidateAll(map[string]any{"name": "jack", "age": 42})
//	engine.ValidateAll(form, "name") // only "name" is re-validated
func (e *Engine) ValidateAll(ambient any, fields ...string) bool {
	if len(fields) == 0 {
		fields = e.schema.order
	}

	batch := make(State, len(fields))
	warned := false
	for _, field := range fields {
		if !e.schema.Has(field) {
			e.skipUnknown(opValidateAll, field)
			continue
		}

		value, _, err := lookup(ambient, field, e.cfg.ambientTag)
		if err != nil && !warned {
			e.logger.Warn("ambient state is not readable, fields are validated as missing",
				"operation", opValidateAll,
				"error", err,
			)
			warned = true
		}

		batch[field] = e.run(field, value, ambient)
	}

	e.commit(func(cur State) State {
		return Merge(cur, batch)
	})

	for field, r := range batch {
		e.ins.recordFailures(field, r)
	}
	valid := batch.Valid()
	e.ins.recordOperation(opValidateAll, valid)

	return valid
}

// CustomValidation is one entry of [Engine.ValidateCustom].
// Key names the schema field whose rules run against Value, with State as the
// ambient state (nil means empty).
type CustomValidation struct {
	Key   string
	Value any
	State any
}

// ValidateCustom validates values that do not live under their field name in a
// single ambient state. Each entry runs the rules of entry.Key against
// entry.Value with entry.State as ambient state. When two entries share a key,
// the later one wins. Entries with unknown keys are skipped.
//
// The results are merged into the current state as one batch, or replace the
// state entirely when the engine was built with [WithReplaceOnCustom].
// ValidateCustom returns whether every computed entry is valid.
//
// Example:
//
//	engine.ValidateCustom(
//	    formstate.CustomValidation{Key: "namesAreAllBob", Value: names},
//	    formstate.CustomValidation{Key: "namesAreAllDingo", Value: names, State: form},
//	)
func (e *Engine) ValidateCustom(entries ...CustomValidation) bool {
	batch := make(State, len(entries))
	for _, entry := range entries {
		if !e.schema.Has(entry.Key) {
			e.skipUnknown(opValidateCustom, entry.Key)
			continue
		}

		batch[entry.Key] = e.run(entry.Key, entry.Value, entry.State)
	}

	if e.cfg.replaceOnCustom {
		e.commit(func(State) State {
			return batch
		})
	} else {
		e.commit(func(cur State) State {
			return Merge(cur, batch)
		})
	}

	for field, r := range batch {
		e.ins.recordFailures(field, r)
	}
	valid := batch.Valid()
	e.ins.recordOperation(opValidateCustom, valid)

	return valid
}

// GetError returns the first error of field, or "" if the field is unknown,
// valid, or has no stored result.
func (e *Engine) GetError(field string) string {
	if !e.schema.Has(field) {
		return ""
	}

	r, ok := e.snapshot()[field]
	if !ok || r.IsValid || len(r.Errors) == 0 {
		return ""
	}

	return r.Errors[0]
}

// GetAllErrors returns every error of field in rule order.
// The result is empty, never nil, if the field is unknown, valid, or has no
// stored result.
func (e *Engine) GetAllErrors(field string) []string {
	if !e.schema.Has(field) {
		return []string{}
	}

	r, ok := e.snapshot()[field]
	if !ok || r.IsValid {
		return []string{}
	}

	return slices.Clone(r.Errors)
}

// GetFieldValid reports whether field is currently valid.
// Unknown fields and fields without a stored result are valid.
func (e *Engine) GetFieldValid(field string) bool {
	return e.GetFieldValidIn(e.snapshot(), field)
}

// GetFieldValidIn is like [Engine.GetFieldValid] but reads st instead of the
// engine's current state. Schema membership is still checked against the
// engine's schema.
func (e *Engine) GetFieldValidIn(st State, field string) bool {
	if !e.schema.Has(field) {
		return true
	}

	r, ok := st[field]
	if !ok {
		return true
	}

	return r.IsValid
}

// IsValid reports whether every entry of the current state is valid.
func (e *Engine) IsValid() bool {
	return e.snapshot().Valid()
}

// ValidationErrors returns the first error of every invalid field in schema
// order. It is empty, never nil, when no field has an error.
func (e *Engine) ValidationErrors() []string {
	st := e.snapshot()

	errs := []string{}
	for _, field := range e.schema.order {
		r, ok := st[field]
		if !ok || r.IsValid || len(r.Errors) == 0 {
			continue
		}
		errs = append(errs, r.Errors[0])
	}

	return errs
}

// ValidationState returns a copy of the current state.
func (e *Engine) ValidationState() State {
	return e.snapshot().Clone()
}

// ResetValidationState makes every schema field valid again and drops any
// entry that is not part of the schema.
func (e *Engine) ResetValidationState() {
	e.commit(func(State) State {
		return NewState(e.schema)
	})
	e.logger.Debug("validation state reset", "fields", e.schema.Len())
}

// ForceValidationState replaces the state with a copy of st without running
// any rule. The caller is responsible for st matching the schema: missing
// fields read as valid, and entries for fields outside the schema still count
// towards [Engine.IsValid].
func (e *Engine) ForceValidationState(st State) {
	next := st.Clone()
	if next == nil {
		next = State{}
	}

	e.commit(func(State) State {
		return next
	})
	e.logger.Debug("validation state forced", "entries", len(next))
}

// Err returns the failures of the current state as an [*Error], or nil if
// [Engine.IsValid] is true. Schema fields come first in schema order.
//
// Example:
//
//	if err := engine.Err(); err != nil {
//	    var verr *formstate.Error
//	    if errors.As(err, &verr) {
//	        for _, fe := range verr.Fields {
//	            fmt.Printf("%s: %s\n", fe.Path, fe.Message)
//	        }
//	    }
//	}
func (e *Engine) Err() error {
	return StateError(e.snapshot(), e.schema.order)
}
