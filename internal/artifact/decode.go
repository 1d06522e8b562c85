// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package artifact

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// Artifact file stems. Each file is JSON, optionally gzip-compressed with a
// trailing .gz; the plain file wins when both exist.
const (
	ModelFile           = "final_model"
	LabelEncodersFile   = "final_label_encoders"
	TargetEncodingsFile = "final_target_encodings"
	MetadataFile        = "final_metadata"
)

// RequiredFiles lists the artifact stems in resolution order.
var RequiredFiles = []string{ModelFile, LabelEncodersFile, TargetEncodingsFile, MetadataFile}

const (
	jsonExt = ".json"
	gzExt   = ".gz"
)

// ensembleDocument is the exported forest. Each tree is a set of parallel
// arrays indexed by node id, as produced by a fitted CART tree.
type ensembleDocument struct {
	ModelType   string         `json:"model_type"`
	NFeatures   int            `json:"n_features"`
	Aggregation string         `json:"aggregation"`
	Trees       []treeDocument `json:"trees"`
}

type treeDocument struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

type targetDocument struct {
	County   map[string]float64 `json:"county_map"`
	Postcode map[string]float64 `json:"postcode_map"`
}

type labelDocument map[string][]string

// ResolvePaths returns the on-disk path of every required artifact, keyed by
// stem. The first absent artifact, in RequiredFiles order, is reported as a
// *MissingError.
func ResolvePaths(dir string) (map[string]string, error) {
	paths := make(map[string]string, len(RequiredFiles))
	for _, stem := range RequiredFiles {
		p, err := Resolve(dir, stem)
		if err != nil {
			return nil, err
		}
		paths[stem] = p
	}
	return paths, nil
}

// Resolve returns the path of one artifact stem in dir, preferring the plain
// file over its .gz form.
func Resolve(dir, stem string) (string, error) {
	plain := filepath.Join(dir, stem+jsonExt)
	if isFile(plain) {
		return plain, nil
	}
	if compressed := plain + gzExt; isFile(compressed) {
		return compressed, nil
	}
	return "", &MissingError{Dir: dir, File: stem + jsonExt}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// readDocument decodes one artifact file into target. The file must hold
// exactly one JSON value, and a gzip stream is read to EOF so its checksum is
// verified.
func readDocument(path string, target interface{}) error {
	f, err := os.Open(path) //nolint:gosec // path is built from the configured models directory
	if err != nil {
		return &CorruptError{File: filepath.Base(path), Reason: "open", Err: err}
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file

	var r io.Reader = f
	if strings.HasSuffix(path, gzExt) {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return &CorruptError{File: filepath.Base(path), Reason: "decompress", Err: err}
		}
		defer func() { _ = gzr.Close() }() //nolint:errcheck // checksum errors surface through the drain below
		r = gzr
	}

	dec := json.NewDecoder(r)
	if err := dec.Decode(target); err != nil {
		return &CorruptError{File: filepath.Base(path), Reason: "decode", Err: err}
	}
	if dec.More() {
		return &CorruptError{File: filepath.Base(path), Reason: "trailing data after JSON document"}
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return &CorruptError{File: filepath.Base(path), Reason: "decompress", Err: err}
	}
	return nil
}

// readBundle resolves, decodes and cross-validates the four artifacts in dir.
func readBundle(ctx context.Context, dir string) (*Bundle, error) {
	paths, err := ResolvePaths(dir)
	if err != nil {
		return nil, err
	}

	var (
		ensDoc    ensembleDocument
		labelDoc  labelDocument
		targetDoc targetDocument
		meta      Metadata
	)

	var g errgroup.Group
	g.Go(func() error { return readDocument(paths[ModelFile], &ensDoc) })
	g.Go(func() error { return readDocument(paths[LabelEncodersFile], &labelDoc) })
	g.Go(func() error { return readDocument(paths[TargetEncodingsFile], &targetDoc) })
	g.Go(func() error { return readDocument(paths[MetadataFile], &meta) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load canceled: %w", err)
	}

	ensemble, err := buildEnsemble(&ensDoc)
	if err != nil {
		return nil, err
	}
	if err := checkMetadata(&meta, ensemble); err != nil {
		return nil, err
	}
	encoders, err := buildEncoders(labelDoc)
	if err != nil {
		return nil, err
	}
	county, err := NewTargetTable(targetDoc.County)
	if err != nil {
		return nil, corrupt(TargetEncodingsFile, "county_map: %v", err)
	}
	postcode, err := NewTargetTable(targetDoc.Postcode)
	if err != nil {
		return nil, corrupt(TargetEncodingsFile, "postcode_map: %v", err)
	}

	return &Bundle{
		Ensemble: ensemble,
		Encoders: encoders,
		County:   county,
		Postcode: postcode,
		Metadata: meta,
		Source:   dir,
		LoadedAt: time.Now(),
	}, nil
}

func buildEnsemble(doc *ensembleDocument) (*Ensemble, error) {
	switch doc.Aggregation {
	case "", "mean":
	default:
		return nil, corrupt(ModelFile, "unsupported aggregation %q", doc.Aggregation)
	}
	if doc.NFeatures <= 0 {
		return nil, corrupt(ModelFile, "n_features must be positive, got %d", doc.NFeatures)
	}
	if len(doc.Trees) == 0 {
		return nil, corrupt(ModelFile, "ensemble has no trees")
	}

	trees := make([]*Tree, len(doc.Trees))
	for i := range doc.Trees {
		nodes, err := doc.Trees[i].nodes()
		if err != nil {
			return nil, corrupt(ModelFile, "tree %d: %v", i, err)
		}
		tree, err := NewTree(nodes, doc.NFeatures)
		if err != nil {
			return nil, corrupt(ModelFile, "tree %d: %v", i, err)
		}
		trees[i] = tree
	}

	return &Ensemble{
		ModelType:   doc.ModelType,
		NumFeatures: doc.NFeatures,
		Trees:       trees,
	}, nil
}

// nodes converts the parallel arrays into node records.
func (d *treeDocument) nodes() ([]Node, error) {
	n := len(d.ChildrenLeft)
	if len(d.ChildrenRight) != n || len(d.Feature) != n || len(d.Threshold) != n || len(d.Value) != n {
		return nil, fmt.Errorf("array lengths differ (left=%d right=%d feature=%d threshold=%d value=%d)",
			n, len(d.ChildrenRight), len(d.Feature), len(d.Threshold), len(d.Value))
	}
	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = Node{
			Feature:   d.Feature[i],
			Threshold: d.Threshold[i],
			Left:      d.ChildrenLeft[i],
			Right:     d.ChildrenRight[i],
			Value:     d.Value[i],
		}
	}
	return nodes, nil
}

func checkMetadata(meta *Metadata, ensemble *Ensemble) error {
	if meta.ModelType == "" {
		return corrupt(MetadataFile, "model_type is empty")
	}
	if ensemble.ModelType != "" && ensemble.ModelType != meta.ModelType {
		return corrupt(MetadataFile, "model_type %q does not match model %q", meta.ModelType, ensemble.ModelType)
	}
	if meta.NEstimators != ensemble.TreeCount() {
		return corrupt(MetadataFile, "n_estimators is %d but model has %d trees", meta.NEstimators, ensemble.TreeCount())
	}
	if len(meta.Features) != ensemble.NumFeatures {
		return corrupt(MetadataFile, "%d features listed but model expects %d", len(meta.Features), ensemble.NumFeatures)
	}
	return nil
}

func buildEncoders(doc labelDocument) (map[string]*LabelEncoder, error) {
	encoders := make(map[string]*LabelEncoder, len(CategoricalFields))
	for _, field := range CategoricalFields {
		classes, ok := doc[field]
		if !ok {
			return nil, corrupt(LabelEncodersFile, "no encoder for %s", field)
		}
		enc, err := NewLabelEncoder(classes)
		if err != nil {
			return nil, corrupt(LabelEncodersFile, "%s: %v", field, err)
		}
		encoders[field] = enc
	}
	return encoders, nil
}
