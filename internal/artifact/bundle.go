// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package artifact

import (
	"fmt"
	"sort"
	"time"
)

// Categorical fields with a fitted label encoder.
const (
	FieldPropertyType = "property_type"
	FieldOldNew       = "old_new"
	FieldDuration     = "duration"
)

// CategoricalFields lists every field that must have a label encoder.
var CategoricalFields = []string{FieldPropertyType, FieldOldNew, FieldDuration}

// UnknownKey is the reserved target-encoding entry used for unseen values.
const UnknownKey = "UNKNOWN"

// Metadata describes the trained model as recorded by the training pipeline.
type Metadata struct {
	ModelType       string   `json:"model_type"`
	NEstimators     int      `json:"n_estimators"`
	Features        []string `json:"features"`
	TrainingSamples int      `json:"training_samples"`
	CVR2Mean        float64  `json:"cv_r2_mean"`
	ExpectedR2      float64  `json:"expected_r2"`
	TrainedDate     string   `json:"trained_date"`
}

// LabelEncoder is the fitted bijection from category code to integer index.
// The index of a code is its position in the fitted class list.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// NewLabelEncoder builds an encoder from the fitted class list.
// Duplicate or empty codes are rejected since the mapping must be bijective.
func NewLabelEncoder(classes []string) (*LabelEncoder, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("no classes")
	}
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		if c == "" {
			return nil, fmt.Errorf("empty class at position %d", i)
		}
		if prev, dup := index[c]; dup {
			return nil, fmt.Errorf("class %q appears at positions %d and %d", c, prev, i)
		}
		index[c] = i
	}
	return &LabelEncoder{
		classes: append([]string(nil), classes...),
		index:   index,
	}, nil
}

// Transform returns the integer index of code and whether it was fitted.
func (e *LabelEncoder) Transform(code string) (int, bool) {
	i, ok := e.index[code]
	return i, ok
}

// Classes returns a copy of the fitted class list.
func (e *LabelEncoder) Classes() []string {
	return append([]string(nil), e.classes...)
}

// TargetTable maps a high-cardinality category to its training-time average
// log price. The UNKNOWN entry is held separately so the fallback branch is
// explicit at every call site.
type TargetTable struct {
	values  map[string]float64
	unknown float64
}

// NewTargetTable builds a table; values must contain UnknownKey.
func NewTargetTable(values map[string]float64) (*TargetTable, error) {
	unknown, ok := values[UnknownKey]
	if !ok {
		return nil, fmt.Errorf("missing reserved %q entry", UnknownKey)
	}
	copied := make(map[string]float64, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &TargetTable{values: copied, unknown: unknown}, nil
}

// Exact looks up key without any fallback.
func (t *TargetTable) Exact(key string) (float64, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Fallback returns the value for the reserved UNKNOWN entry.
func (t *TargetTable) Fallback() float64 {
	return t.unknown
}

// Len returns the number of entries, UNKNOWN included.
func (t *TargetTable) Len() int {
	return len(t.values)
}

// Keys returns the sorted keys of the table.
func (t *TargetTable) Keys() []string {
	keys := make([]string, 0, len(t.values))
	for k := range t.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bundle is the immutable trained artifact set. It is never mutated after
// Load publishes it and is safe to share between goroutines.
type Bundle struct {
	Ensemble *Ensemble
	Encoders map[string]*LabelEncoder
	County   *TargetTable
	Postcode *TargetTable
	Metadata Metadata

	// Source is the directory the bundle was read from.
	Source string

	// LoadedAt is when the bundle finished loading.
	LoadedAt time.Time
}

// Encoder returns the label encoder for a categorical field.
func (b *Bundle) Encoder(field string) (*LabelEncoder, bool) {
	e, ok := b.Encoders[field]
	return e, ok
}

// ModelInfo is the public description of the loaded model. Every field other
// than Loaded is nil until a bundle has been published.
type ModelInfo struct {
	Loaded          bool     `json:"loaded"`
	ModelType       *string  `json:"model_type"`
	NEstimators     *int     `json:"n_estimators"`
	Features        []string `json:"features"`
	TrainingSamples *int     `json:"training_samples"`
	CVR2Mean        *float64 `json:"cv_r2_mean"`
	ExpectedR2      *float64 `json:"expected_r2"`
	TrainedDate     *string  `json:"trained_date"`
}

func describeBundle(b *Bundle) ModelInfo {
	if b == nil {
		return ModelInfo{Loaded: false}
	}
	m := b.Metadata
	return ModelInfo{
		Loaded:          true,
		ModelType:       &m.ModelType,
		NEstimators:     &m.NEstimators,
		Features:        append([]string(nil), m.Features...),
		TrainingSamples: &m.TrainingSamples,
		CVR2Mean:        &m.CVR2Mean,
		ExpectedR2:      &m.ExpectedR2,
		TrainedDate:     &m.TrainedDate,
	}
}
