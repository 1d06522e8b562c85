// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package artifact

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Check validates a fully decoded bundle before it is published.
type Check func(*Bundle) error

// Store owns the trained bundle. The bundle pointer is published once, after
// full construction, so readers never take a lock and never observe a
// partially populated bundle.
type Store struct {
	bundle  atomic.Pointer[Bundle]
	loading atomic.Bool
	logger  zerolog.Logger
}

// NewStore creates an empty, not-ready store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		logger: logger.With().Str("component", "artifact").Logger(),
	}
}

// Load reads the four artifacts from dir, runs every check, and publishes the
// bundle. It succeeds at most once per Store; later calls return
// ErrAlreadyLoaded. A failed Load leaves the store unloaded.
func (s *Store) Load(ctx context.Context, dir string, checks ...Check) error {
	if !s.loading.CompareAndSwap(false, true) {
		return ErrAlreadyLoaded
	}
	defer s.loading.Store(false)
	if s.bundle.Load() != nil {
		return ErrAlreadyLoaded
	}

	start := time.Now()
	s.logger.Info().Str("dir", dir).Msg("loading model artifacts")

	b, err := readBundle(ctx, dir)
	if err != nil {
		s.logger.Error().Err(err).Str("dir", dir).Msg("model artifacts rejected")
		return err
	}
	for _, check := range checks {
		if err := check(b); err != nil {
			s.logger.Error().Err(err).Str("dir", dir).Msg("model artifacts failed validation")
			return err
		}
	}

	s.bundle.Store(b)

	s.logger.Info().
		Str("model_type", b.Metadata.ModelType).
		Int("trees", b.Ensemble.TreeCount()).
		Int("counties", b.County.Len()).
		Int("postcode_regions", b.Postcode.Len()).
		Str("trained_date", b.Metadata.TrainedDate).
		Dur("duration", time.Since(start)).
		Msg("model artifacts loaded")

	return nil
}

// Ready reports whether a bundle has been published.
func (s *Store) Ready() bool {
	return s.bundle.Load() != nil
}

// Bundle returns the published bundle, or nil before a successful Load.
func (s *Store) Bundle() *Bundle {
	return s.bundle.Load()
}

// Describe returns the model metadata and ready flag. It never fails; before
// Load only Loaded=false is set.
func (s *Store) Describe() ModelInfo {
	return describeBundle(s.bundle.Load())
}

// Dir returns the directory the published bundle was read from, or "" before
// a successful Load.
func (s *Store) Dir() string {
	if b := s.bundle.Load(); b != nil {
		return b.Source
	}
	return ""
}
