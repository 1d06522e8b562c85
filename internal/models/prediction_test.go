// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/valuator/internal/forecast"
	"github.com/tomtom215/valuator/internal/validation"
)

func sampleRequest() PredictionRequest {
	return PredictionRequest{
		PropertyType: "T",
		OldNew:       "N",
		Duration:     "F",
		County:       "GREATER LONDON",
		Postcode:     "SW1A 1AA",
		Year:         2024,
	}
}

func TestPredictionRequest_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *PredictionRequest)
		field  string
	}{
		{"valid", func(*PredictionRequest) {}, ""},
		{"lower-case county normalized", func(r *PredictionRequest) { r.County = "  greater london " }, ""},
		{"lower-case postcode normalized", func(r *PredictionRequest) { r.Postcode = "sw1a 1aa" }, ""},
		{"invalid property type", func(r *PredictionRequest) { r.PropertyType = "X" }, "property_type"},
		{"lower-case property type", func(r *PredictionRequest) { r.PropertyType = "t" }, "property_type"},
		{"invalid old_new", func(r *PredictionRequest) { r.OldNew = "X" }, "old_new"},
		{"invalid duration", func(r *PredictionRequest) { r.Duration = "X" }, "duration"},
		{"county too short", func(r *PredictionRequest) { r.County = " A " }, "county"},
		{"county too long", func(r *PredictionRequest) { r.County = strings.Repeat("A", 51) }, "county"},
		{"postcode too short", func(r *PredictionRequest) { r.Postcode = "SW1" }, "postcode"},
		{"postcode too long", func(r *PredictionRequest) { r.Postcode = "SW1A 1AA 1AA" }, "postcode"},
		{"year too early", func(r *PredictionRequest) { r.Year = 1994 }, "year"},
		{"year too late", func(r *PredictionRequest) { r.Year = 2031 }, "year"},
		{"year boundary low", func(r *PredictionRequest) { r.Year = 1995 }, ""},
		{"year boundary high", func(r *PredictionRequest) { r.Year = 2030 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleRequest()
			tt.mutate(&req)
			req.Normalize()
			verr := validation.ValidateStruct(&req)

			if tt.field == "" {
				if verr != nil {
					t.Errorf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("ValidateStruct() = nil, want error on %s", tt.field)
			}
			if got := verr.Errors()[0].Field(); got != tt.field {
				t.Errorf("failed field = %q, want %q", got, tt.field)
			}
		})
	}
}

func TestPredictionRequest_ToInput(t *testing.T) {
	req := sampleRequest()
	req.County = " surrey"
	req.Postcode = "gu1 1aa "
	req.Normalize()

	want := forecast.Input{
		PropertyType: "T",
		OldNew:       "N",
		Duration:     "F",
		County:       "SURREY",
		Postcode:     "GU1 1AA",
		Year:         2024,
	}
	if diff := cmp.Diff(want, req.ToInput()); diff != "" {
		t.Errorf("ToInput() mismatch (-want +got):\n%s", diff)
	}
}

func TestPredictionRequest_JSONFieldNames(t *testing.T) {
	body := `{"property_type":"D","old_new":"Y","duration":"L","county":"KENT","postcode":"CT1 1AA","year":2001}`

	var req PredictionRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := PredictionRequest{
		PropertyType: "D",
		OldNew:       "Y",
		Duration:     "L",
		County:       "KENT",
		Postcode:     "CT1 1AA",
		Year:         2001,
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("decoded request mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorResponse_JSON(t *testing.T) {
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	data, err := json.Marshal(ErrorResponse{
		Detail:    "Model not loaded. Please try again in a few seconds.",
		ErrorType: ErrorTypeModelNotReady,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"detail":"Model not loaded. Please try again in a few seconds.",` +
		`"error_type":"MODEL_NOT_READY","timestamp":"2026-01-15T12:00:00Z"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
