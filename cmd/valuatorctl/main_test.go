// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/valuator/internal/artifact"
	"github.com/tomtom215/valuator/internal/artifact/artifacttest"
	"github.com/tomtom215/valuator/internal/forecast"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	dir := artifacttest.Default().WriteTemp(t)

	out, err := execute(t, "inspect", "--dir", dir)
	if err != nil {
		t.Fatalf("inspect: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Model type:       RandomForest",
		"Estimators:       5",
		"Trained:          2024-01-15",
		"property_type_enc, county_enc",
		filepath.Join(dir, "final_model.json"),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectJSON(t *testing.T) {
	out, err := execute(t, "inspect", "--json", "--dir", artifacttest.Default().WriteTemp(t))
	if err != nil {
		t.Fatalf("inspect --json: %v", err)
	}

	var info artifact.ModelInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not ModelInfo JSON: %v\n%s", err, out)
	}
	if !info.Loaded || info.NEstimators == nil || *info.NEstimators != 5 {
		t.Errorf("unexpected model info: %+v", info)
	}
}

func TestInspectMissingBundle(t *testing.T) {
	_, err := execute(t, "inspect", "--dir", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "final_model.json") {
		t.Errorf("inspect error = %v, want it to name final_model.json", err)
	}
}

func TestPredict(t *testing.T) {
	dir := artifacttest.Default().WriteTemp(t)

	out, err := execute(t, "predict", "--dir", dir,
		"--property-type", "T", "--old-new", "N", "--duration", "F",
		"--county", "greater london", "--postcode", "sw1a 1aa", "--year", "2024")
	if err != nil {
		t.Fatalf("predict: %v\n%s", err, out)
	}

	var res forecast.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not a prediction: %v\n%s", err, out)
	}
	if math.Abs(res.PredictedPrice-425000) > 0.01 {
		t.Errorf("PredictedPrice = %v, want 425000", res.PredictedPrice)
	}
	if len(res.FeaturesUsed) != 6 {
		t.Errorf("FeaturesUsed = %v", res.FeaturesUsed)
	}
}

func TestPredictRejectsInput(t *testing.T) {
	dir := artifacttest.Default().WriteTemp(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "invalid property type",
			args: []string{"--property-type", "X", "--county", "Surrey", "--postcode", "GU1 1AA"},
			want: "property_type must be one of",
		},
		{
			name: "year out of range",
			args: []string{"--property-type", "D", "--county", "Surrey", "--postcode", "GU1 1AA", "--year", "1990"},
			want: "year",
		},
		{
			name: "missing required flag",
			args: []string{"--property-type", "D", "--county", "Surrey"},
			want: "postcode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"predict", "--dir", dir}, tt.args...)...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestDeploy(t *testing.T) {
	from := artifacttest.Default().WriteTemp(t)
	to := filepath.Join(t.TempDir(), "models")

	out, err := execute(t, "deploy", "--from", from, "--to", to)
	if err != nil {
		t.Fatalf("deploy: %v\n%s", err, out)
	}
	for _, stem := range artifact.RequiredFiles {
		if !strings.Contains(out, "COPIED:    "+stem+".json") {
			t.Errorf("output does not report %s:\n%s", stem, out)
		}
		if _, err := os.Stat(filepath.Join(to, stem+".json")); err != nil {
			t.Errorf("%s not deployed: %v", stem, err)
		}
	}
	if !strings.Contains(out, "Verified: RandomForest with 5 trees, trained 2024-01-15") {
		t.Errorf("output missing verification line:\n%s", out)
	}
}

func TestDeployMissingArtifact(t *testing.T) {
	f := artifacttest.Default()
	f.Omit = []string{artifact.MetadataFile}
	from := f.WriteTemp(t)

	t.Run("verify fails", func(t *testing.T) {
		out, err := execute(t, "deploy", "--from", from, "--to", t.TempDir())
		if err == nil {
			t.Fatal("expected verification error")
		}
		if !strings.Contains(out, "NOT FOUND: final_metadata.json") {
			t.Errorf("output does not report the missing artifact:\n%s", out)
		}
		if !strings.Contains(err.Error(), "verify deployed bundle") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("stale copy in target", func(t *testing.T) {
		to := artifacttest.Default().WriteTemp(t)
		out, err := execute(t, "deploy", "--from", from, "--to", to)
		if err == nil {
			t.Fatalf("verification passed on a stale metadata file:\n%s", out)
		}
		if !strings.Contains(out, "REMOVED:   final_metadata.json (stale copy in target)") {
			t.Errorf("output does not report the stale copy:\n%s", out)
		}
	})

	t.Run("no verify", func(t *testing.T) {
		out, err := execute(t, "deploy", "--from", from, "--to", t.TempDir(), "--no-verify")
		if err != nil {
			t.Fatalf("deploy --no-verify: %v", err)
		}
		if !strings.Contains(out, "Deployed 3 of 4 artifacts (not verified)") {
			t.Errorf("unexpected summary:\n%s", out)
		}
	})
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0.00 MB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024 / 2, "2.50 MB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.n); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
