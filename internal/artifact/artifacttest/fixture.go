// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

// Package artifacttest writes model artifact bundles to disk for tests.
package artifacttest

import (
	"bytes"
	"compress/gzip"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
)

// Tree is one exported tree in parallel-array form.
type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

// Leaf returns a single-node tree that always outputs v.
func Leaf(v float64) Tree {
	return Tree{
		ChildrenLeft:  []int{-1},
		ChildrenRight: []int{-1},
		Feature:       []int{-2},
		Threshold:     []float64{-2},
		Value:         []float64{v},
	}
}

// Stump returns a depth-one tree: x[feature] <= threshold outputs left,
// anything else outputs right.
func Stump(feature int, threshold, left, right float64) Tree {
	return Tree{
		ChildrenLeft:  []int{1, -1, -1},
		ChildrenRight: []int{2, -1, -1},
		Feature:       []int{feature, -2, -2},
		Threshold:     []float64{threshold, -2, -2},
		Value:         []float64{0, left, right},
	}
}

// Fixture describes a bundle on disk. Zero-valued NEstimators and NFeatures
// are derived from Trees and Features when written.
type Fixture struct {
	ModelType       string
	Aggregation     string
	NFeatures       int
	NEstimators     int
	Features        []string
	Trees           []Tree
	LabelEncoders   map[string][]string
	County          map[string]float64
	Postcode        map[string]float64
	TrainingSamples int
	CVR2Mean        float64
	ExpectedR2      float64
	TrainedDate     string

	// Gzip writes every file as <stem>.json.gz.
	Gzip bool

	// Omit lists file stems that are not written.
	Omit []string

	// Raw replaces the encoded content of a file stem with the given bytes.
	Raw map[string][]byte
}

// DefaultFeatures is the six-column layout of the trained model.
var DefaultFeatures = []string{
	"property_type_enc",
	"county_enc",
	"postcode_region_enc",
	"old_new_enc",
	"duration_enc",
	"year",
}

// DefaultLogPrice is the per-tree output of the default fixture.
var DefaultLogPrice = math.Log(425000)

// Default returns a valid bundle whose five trees all output log(425000).
func Default() *Fixture {
	trees := make([]Tree, 5)
	for i := range trees {
		trees[i] = Leaf(DefaultLogPrice)
	}
	return &Fixture{
		ModelType:   "RandomForest",
		Aggregation: "mean",
		Features:    append([]string(nil), DefaultFeatures...),
		Trees:       trees,
		LabelEncoders: map[string][]string{
			"property_type": {"D", "F", "O", "S", "T"},
			"old_new":       {"N", "Y"},
			"duration":      {"F", "L", "U"},
		},
		County: map[string]float64{
			"GREATER LONDON": 450000.0,
			"SURREY":         420000.0,
			"UNKNOWN":        300000.0,
		},
		Postcode: map[string]float64{
			"SW1A":    500000.0,
			"SW1":     480000.0,
			"UNKNOWN": 300000.0,
		},
		TrainingSamples: 99831,
		CVR2Mean:        0.4390,
		ExpectedR2:      0.11,
		TrainedDate:     "2024-01-15",
	}
}

// Write writes the fixture into dir.
func (f *Fixture) Write(tb testing.TB, dir string) {
	tb.Helper()

	nFeatures := f.NFeatures
	if nFeatures == 0 {
		nFeatures = len(f.Features)
	}
	nEstimators := f.NEstimators
	if nEstimators == 0 {
		nEstimators = len(f.Trees)
	}

	docs := map[string]interface{}{
		"final_model": map[string]interface{}{
			"model_type":  f.ModelType,
			"n_features":  nFeatures,
			"aggregation": f.Aggregation,
			"trees":       f.Trees,
		},
		"final_label_encoders": f.LabelEncoders,
		"final_target_encodings": map[string]interface{}{
			"county_map":   f.County,
			"postcode_map": f.Postcode,
		},
		"final_metadata": map[string]interface{}{
			"model_type":       f.ModelType,
			"n_estimators":     nEstimators,
			"features":         f.Features,
			"training_samples": f.TrainingSamples,
			"cv_r2_mean":       f.CVR2Mean,
			"expected_r2":      f.ExpectedR2,
			"trained_date":     f.TrainedDate,
		},
	}

	omitted := make(map[string]bool, len(f.Omit))
	for _, stem := range f.Omit {
		omitted[stem] = true
	}

	for stem, doc := range docs {
		if omitted[stem] {
			continue
		}
		data, ok := f.Raw[stem]
		if !ok {
			var err error
			data, err = json.Marshal(doc)
			if err != nil {
				tb.Fatalf("marshal %s: %v", stem, err)
			}
		}
		name := stem + ".json"
		if f.Gzip {
			name += ".gz"
			data = compress(tb, data)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			tb.Fatalf("write %s: %v", name, err)
		}
	}
}

// WriteTemp writes the fixture into a new temporary directory and returns it.
func (f *Fixture) WriteTemp(tb testing.TB) string {
	tb.Helper()
	dir := tb.TempDir()
	f.Write(tb, dir)
	return dir
}

func compress(tb testing.TB, data []byte) []byte {
	tb.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		tb.Fatalf("gzip: %v", err)
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}
