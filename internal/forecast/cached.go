// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package forecast

import (
	"time"

	"github.com/tomtom215/valuator/internal/artifact"
	"github.com/tomtom215/valuator/internal/cache"
	"github.com/tomtom215/valuator/internal/metrics"
)

// CachedEngine memoizes successful predictions of an Engine. The bundle never
// changes after Load, so a result for a given Input stays correct for the
// life of the process. Errors are never cached.
type CachedEngine struct {
	engine  *Engine
	results *cache.LRU[Input, Result]
}

// NewCachedEngine wraps engine with a cache of up to size results.
func NewCachedEngine(engine *Engine, size int) *CachedEngine {
	return &CachedEngine{
		engine:  engine,
		results: cache.NewLRU[Input, Result](size),
	}
}

// Ready reports whether the wrapped engine can serve predictions.
func (c *CachedEngine) Ready() bool {
	return c.engine.Ready()
}

// Describe returns the wrapped engine's model info.
func (c *CachedEngine) Describe() artifact.ModelInfo {
	return c.engine.Describe()
}

// Predict returns a cached result for in, or runs the engine and caches a
// successful result. County and postcode are normalized before the lookup,
// so spellings that encode identically share one entry. Each caller gets its
// own copy. A hit counts as a successful prediction.
func (c *CachedEngine) Predict(in Input) (*Result, error) {
	start := time.Now()
	in.County = NormalizeCounty(in.County)
	in.Postcode = NormalizePostcode(in.Postcode)

	if res, ok := c.results.Get(in); ok {
		metrics.RecordPredictionCache(true, false)
		metrics.RecordPrediction(metrics.OutcomeSuccess, time.Since(start))
		return cloneResult(res), nil
	}

	res, err := c.engine.Predict(in)
	if err != nil {
		return nil, err
	}
	evicted := c.results.Add(in, *cloneResult(*res))
	metrics.RecordPredictionCache(false, evicted)
	return res, nil
}

// Stats returns the cache counters.
func (c *CachedEngine) Stats() cache.Stats {
	return c.results.Stats()
}

func cloneResult(r Result) *Result {
	r.FeaturesUsed = append([]string(nil), r.FeaturesUsed...)
	return &r
}
