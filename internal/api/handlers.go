// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package api

import (
	"time"

	"github.com/tomtom215/valuator/internal/artifact"
	"github.com/tomtom215/valuator/internal/forecast"
)

// Predictor is the engine surface the handlers use.
type Predictor interface {
	Ready() bool
	Describe() artifact.ModelInfo
	Predict(in forecast.Input) (*forecast.Result, error)
}

var (
	_ Predictor = (*forecast.Engine)(nil)
	_ Predictor = (*forecast.CachedEngine)(nil)
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and decoding helpers
//   - handlers_health.go: root, health, probes and model info
//   - handlers_predict.go: price prediction
type Handler struct {
	engine    Predictor
	startTime time.Time
}

// NewHandler creates a handler over engine.
func NewHandler(engine Predictor) *Handler {
	return &Handler{
		engine:    engine,
		startTime: time.Now(),
	}
}
