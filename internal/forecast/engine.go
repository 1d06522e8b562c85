// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/valuator/internal/artifact"
	"github.com/tomtom215/valuator/internal/metrics"
)

// Summary is the model description attached to every prediction.
type Summary struct {
	Type        string  `json:"type"`
	NEstimators int     `json:"n_estimators"`
	ExpectedR2  float64 `json:"expected_r2"`
}

// Result is one price prediction.
type Result struct {
	PredictedPrice     float64  `json:"predicted_price"`
	ConfidenceInterval Interval `json:"confidence_interval"`
	FeaturesUsed       []string `json:"features_used"`
	ModelInfo          Summary  `json:"model_info"`
}

// Engine encodes inputs and runs the ensemble held by a Store. It holds no
// mutable state of its own and is safe for concurrent use.
type Engine struct {
	store  *artifact.Store
	logger zerolog.Logger
}

// NewEngine creates an engine over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store *artifact.Store, logger zerolog.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger.With().Str("component", "forecast").Logger(),
	}
}

// Load loads the bundle in dir into the store, rejecting bundles whose
// feature schema does not match FeatureNames.
func (e *Engine) Load(ctx context.Context, dir string) error {
	start := time.Now()
	err := e.store.Load(ctx, dir, CheckSchema)
	switch {
	case errors.Is(err, artifact.ErrAlreadyLoaded):
	case err != nil:
		metrics.RecordModelLoad(time.Since(start), 0, err)
	default:
		metrics.RecordModelLoad(time.Since(start), e.store.Bundle().Ensemble.TreeCount(), nil)
	}
	return err
}

// Ready reports whether predictions can be served.
func (e *Engine) Ready() bool {
	return e.store.Ready()
}

// Describe returns the loaded model's metadata. It never fails.
func (e *Engine) Describe() artifact.ModelInfo {
	return e.store.Describe()
}

// Encode returns the feature vector for in against the loaded bundle.
func (e *Engine) Encode(in Input) (Encoding, error) {
	b := e.store.Bundle()
	if b == nil {
		return Encoding{}, ErrModelNotReady
	}
	return Encode(b, in)
}

// Predict prices one property.
//
// Errors are ErrModelNotReady, a *CategoryError (ErrUnknownCategory) or an
// error wrapping ErrPredictionFailure.
func (e *Engine) Predict(in Input) (*Result, error) {
	start := time.Now()
	res, err := e.predict(e.store.Bundle(), in)
	metrics.RecordPrediction(outcome(err), time.Since(start))
	return res, err
}

// predict runs one prediction against b. A panic during evaluation is
// recovered and reported as ErrPredictionFailure.
func (e *Engine) predict(b *artifact.Bundle, in Input) (res *Result, err error) {
	if b == nil {
		return nil, ErrModelNotReady
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("recovered panic during prediction")
			res, err = nil, fmt.Errorf("%w: %v", ErrPredictionFailure, r)
		}
	}()

	enc, err := Encode(b, in)
	if err != nil {
		return nil, err
	}
	if enc.CountyFallback {
		metrics.RecordCategoryFallback("county")
		e.logger.Debug().Str("county", enc.County).Msg("unseen county, using UNKNOWN encoding")
	}
	if enc.PostcodeFallback {
		metrics.RecordCategoryFallback("postcode_region")
		e.logger.Debug().Str("postcode_region", enc.PostcodeRegion).Msg("unseen postcode region, using UNKNOWN encoding")
	}

	outputs, err := b.Ensemble.Outputs(enc.Vector, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPredictionFailure, err)
	}
	s, err := summarize(outputs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPredictionFailure, err)
	}
	price, interval, err := s.prices()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPredictionFailure, err)
	}

	return &Result{
		PredictedPrice:     price,
		ConfidenceInterval: interval,
		FeaturesUsed:       append([]string(nil), b.Metadata.Features...),
		ModelInfo: Summary{
			Type:        b.Metadata.ModelType,
			NEstimators: b.Ensemble.TreeCount(),
			ExpectedR2:  b.Metadata.ExpectedR2,
		},
	}, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrModelNotReady):
		return metrics.OutcomeNotReady
	case errors.Is(err, ErrUnknownCategory):
		return metrics.OutcomeUnknownCategory
	default:
		return metrics.OutcomeFailure
	}
}
