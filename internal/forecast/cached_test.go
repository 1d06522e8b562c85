// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package forecast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/valuator/internal/artifact"
	"github.com/tomtom215/valuator/internal/artifact/artifacttest"
	"github.com/tomtom215/valuator/internal/cache"
	"github.com/tomtom215/valuator/internal/metrics"
)

func TestCachedEnginePredict(t *testing.T) {
	c := NewCachedEngine(newEngine(t, artifacttest.Default()), 8)
	in := sampleInput()

	successes := testutil.ToFloat64(metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeSuccess))
	hits := testutil.ToFloat64(metrics.PredictionCacheLookups.WithLabelValues("hit"))

	first, err := c.Predict(in)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	second, err := c.Predict(in)
	if err != nil {
		t.Fatalf("Predict (cached): %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached result differs (-first +second):\n%s", diff)
	}
	if got := testutil.ToFloat64(metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeSuccess)) - successes; got != 2 {
		t.Errorf("successful predictions delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.PredictionCacheLookups.WithLabelValues("hit")) - hits; got != 1 {
		t.Errorf("cache hits delta = %v, want 1", got)
	}
	if diff := cmp.Diff(cache.Stats{Hits: 1, Misses: 1, Size: 1}, c.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestCachedEngineNormalizesKey(t *testing.T) {
	c := NewCachedEngine(newEngine(t, artifacttest.Default()), 8)

	variants := []func(in *Input){
		func(*Input) {},
		func(in *Input) { in.County = "  greater london " },
		func(in *Input) { in.County = "Greater London"; in.Postcode = " sw1a 1aa" },
	}
	for i, mutate := range variants {
		in := sampleInput()
		mutate(&in)
		if _, err := c.Predict(in); err != nil {
			t.Fatalf("Predict variant %d: %v", i, err)
		}
	}

	if diff := cmp.Diff(cache.Stats{Hits: 2, Misses: 1, Size: 1}, c.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestCachedEngineReturnsCopies(t *testing.T) {
	c := NewCachedEngine(newEngine(t, artifacttest.Default()), 8)
	in := sampleInput()

	first, err := c.Predict(in)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	first.FeaturesUsed[0] = "mutated"
	first.PredictedPrice = 1

	second, err := c.Predict(in)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if second.FeaturesUsed[0] != FeatureNames[0] || second.PredictedPrice != 425000 {
		t.Errorf("caller mutation leaked into the cache: %+v", second)
	}
}

func TestCachedEngineDoesNotCacheErrors(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		c := NewCachedEngine(NewEngine(artifact.NewStore(zerolog.Nop()), zerolog.Nop()), 8)
		if c.Ready() {
			t.Fatal("Ready() before load")
		}
		if c.Describe().Loaded {
			t.Error("Describe().Loaded before load")
		}
		for i := 0; i < 2; i++ {
			if _, err := c.Predict(sampleInput()); !errors.Is(err, ErrModelNotReady) {
				t.Fatalf("Predict error = %v, want ErrModelNotReady", err)
			}
		}
		if c.Stats().Size != 0 {
			t.Errorf("error result was cached: %+v", c.Stats())
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		f := artifacttest.Default()
		f.LabelEncoders[artifact.FieldPropertyType] = []string{"D", "S"}
		c := NewCachedEngine(newEngine(t, f), 8)

		in := sampleInput()
		in.PropertyType = "T"
		if _, err := c.Predict(in); !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("Predict error = %v, want ErrUnknownCategory", err)
		}
		if c.Stats().Size != 0 {
			t.Errorf("error result was cached: %+v", c.Stats())
		}
	})
}
