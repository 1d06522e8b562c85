// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package forecast

import (
	"fmt"
	"math"
	"sort"
)

// Interval bounds, as percentiles of the per-tree outputs.
const (
	LowerPercentile = 10
	UpperPercentile = 90
)

// Interval is a price range in currency units.
type Interval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// spread is the log-space summary of one set of per-tree outputs.
type spread struct {
	mean  float64
	lower float64
	upper float64
}

// summarize computes the mean and the interval percentiles of outputs.
// outputs is reordered.
func summarize(outputs []float64) (spread, error) {
	if len(outputs) == 0 {
		return spread{}, fmt.Errorf("no tree outputs")
	}
	for i, v := range outputs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return spread{}, fmt.Errorf("tree %d produced non-finite output %v", i, v)
		}
	}

	// Sum in tree order before sorting.
	s := spread{mean: mean(outputs)}
	sort.Float64s(outputs)
	s.lower = percentile(outputs, LowerPercentile)
	s.upper = percentile(outputs, UpperPercentile)
	return s, nil
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// percentile returns the p-th percentile of sorted using linear interpolation
// between the two nearest order statistics, virtual index (n-1)*p/100.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	q := p / 100
	virtual := float64(n-1) * q
	lo := math.Floor(virtual)
	i := int(lo)
	if i >= n-1 {
		return sorted[n-1]
	}
	if i < 0 {
		return sorted[0]
	}
	return lerp(sorted[i], sorted[i+1], virtual-lo)
}

// lerp interpolates from the nearer endpoint, which keeps the result exact
// at t=0 and t=1 and monotone in t.
func lerp(a, b, t float64) float64 {
	diff := b - a
	if t >= 0.5 {
		return b - diff*(1-t)
	}
	return a + diff*t
}

// roundCents rounds a currency value to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// prices converts a log-space spread to rounded currency values. Each value
// is exponentiated on its own; the bounds are then widened to contain the
// point estimate so rounding never breaks min <= price <= max.
func (s spread) prices() (float64, Interval, error) {
	price := roundCents(math.Exp(s.mean))
	interval := Interval{
		Min: roundCents(math.Exp(s.lower)),
		Max: roundCents(math.Exp(s.upper)),
	}
	if math.IsInf(price, 0) || math.IsInf(interval.Max, 0) {
		return 0, Interval{}, fmt.Errorf("price overflows")
	}
	interval.Min = math.Min(interval.Min, price)
	interval.Max = math.Max(interval.Max, price)
	return price, interval, nil
}
