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
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName is the meter name used for engine metrics.
const instrumentationName = "rivaas.dev/formstate"

// Operation names recorded in the "operation" attribute.
const (
	opValidate       = "validate"
	opValidateIfTrue = "validate_if_true"
	opValidateAll    = "validate_all"
	opValidateCustom = "validate_custom"
)

// instruments holds the engine's metric instruments.
type instruments struct {
	validations  metric.Int64Counter
	ruleFailures metric.Int64Counter
}

// newInstruments creates the engine's metric instruments.
func newInstruments(provider metric.MeterProvider) (*instruments, error) {
	meter := provider.Meter(instrumentationName)

	var (
		ins instruments
		err error
	)

	ins.validations, err = meter.Int64Counter(
		"formstate_validations_total",
		metric.WithDescription("Total number of validation operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create validations counter: %w", err)
	}

	ins.ruleFailures, err = meter.Int64Counter(
		"formstate_rule_failures_total",
		metric.WithDescription("Total number of failed rules"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule failures counter: %w", err)
	}

	return &ins, nil
}

// recordOperation counts one operation and its outcome.
func (ins *instruments) recordOperation(op string, valid bool) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	ins.validations.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("result", result),
	))
}

// recordFailures counts the failed rules of one field result.
func (ins *instruments) recordFailures(field string, r FieldResult) {
	if len(r.Errors) == 0 {
		return
	}
	ins.ruleFailures.Add(context.Background(), int64(len(r.Errors)), metric.WithAttributes(
		attribute.String("field", field),
	))
}
