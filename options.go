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
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// StateObserver is notified with every new [State] an [Engine] publishes.
// The State passed in is a private copy and may be retained.
type StateObserver func(State)

// config holds internal engine configuration used by [Engine].
type config struct {
	logger           *slog.Logger
	trimStrings      bool
	replaceOnCustom  bool
	ambientTag       string
	observers        []StateObserver
	meterProvider    metric.MeterProvider
	meterProviderSet bool
}

// validate checks the configuration for errors.
func (c *config) validate() error {
	if c.ambientTag == "" {
		return errors.New("ambient tag must not be empty")
	}
	if c.meterProviderSet && c.meterProvider == nil {
		return errors.New("meter provider must not be nil")
	}

	return nil
}

// Option is a functional option for configuring an [Engine].
// Options are passed to [New] or [MustNew].
type Option func(*config)

// WithLogger sets the logger for engine events.
// Evaluations, skipped unknown fields, resets and forced states are logged at
// debug level; unreadable ambient states at warn level. A nil logger discards
// all records, which is also the default.
//
// Example:
//
//	engine := formstate.MustNew(schema, formstate.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTrimStrings trims surrounding whitespace from string values before the
// rules run. Trimming is off by default.
//
// Example:
//
//	engine := formstate.MustNew(schema, formstate.WithTrimStrings(true))
//	engine.Validate("name", "   ", nil) // evaluated as ""
func WithTrimStrings(trim bool) Option {
	return func(c *config) {
		c.trimStrings = trim
	}
}

// WithReplaceOnCustom makes [Engine.ValidateCustom] replace the whole state
// with the results it computes instead of merging them into the current state.
// Fields not named by the batch disappear from the state until the next reset.
// Merging is the default.
func WithReplaceOnCustom(replace bool) Option {
	return func(c *config) {
		c.replaceOnCustom = replace
	}
}

// WithAmbientTag sets the struct tag used to name the fields of struct
// ambient states. The default is "json"; fields without the tag use their Go
// name.
//
// Example:
//
//	type Form struct {
//	    Name string `form:"name"`
//	}
//
//	engine := formstate.MustNew(schema, formstate.WithAmbientTag("form"))
//	engine.ValidateAll(Form{Name: "jack"})
func WithAmbientTag(tag string) Option {
	return func(c *config) {
		c.ambientTag = tag
	}
}

// WithStateObserver registers fn to receive every new state published by the
// engine, for example to drive a re-render. Observers run synchronously, in
// registration order, after the engine has released its lock, so an observer
// may read from the engine. Notifications of concurrent changes are delivered
// one at a time in the order the changes were made. An observer must not
// change the engine it observes.
//
// Example:
//
//	engine := formstate.MustNew(schema, formstate.WithStateObserver(func(st formstate.State) {
//	    view.Update(st)
//	}))
func WithStateObserver(fn StateObserver) Option {
	return func(c *config) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider used to record
// validation counts. Metrics are disabled by default.
//
// Example:
//
//	engine := formstate.MustNew(schema, formstate.WithMeterProvider(otel.GetMeterProvider()))
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = provider
		c.meterProviderSet = true
	}
}

// newConfig creates a new engine config with defaults.
func newConfig() *config {
	return &config{
		ambientTag:    defaultAmbientTag,
		meterProvider: noop.NewMeterProvider(),
	}
}
