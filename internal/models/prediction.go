// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package models

import (
	"strings"

	"github.com/tomtom215/valuator/internal/forecast"
)

// PredictionRequest is the body of POST /api/v1/predict.
//
// Property codes:
//   - property_type: D=Detached, S=Semi-detached, T=Terraced, F=Flat, O=Other
//   - old_new: Y=New build, N=Established
//   - duration: F=Freehold, L=Leasehold, U=Unknown
//
// Call Normalize before validating so the length rules see the
// trimmed, upper-cased county and postcode.
type PredictionRequest struct {
	PropertyType string `json:"property_type" validate:"required,oneof=D S T F O"`
	OldNew       string `json:"old_new" validate:"required,oneof=Y N"`
	Duration     string `json:"duration" validate:"required,oneof=F L U"`
	County       string `json:"county" validate:"required,min=2,max=50"`
	Postcode     string `json:"postcode" validate:"required,min=5,max=10,printascii"`
	Year         int    `json:"year" validate:"required,gte=1995,lte=2030"`
}

// Normalize trims and upper-cases the free-text fields in place. The
// single-letter codes are left as sent; lower-case codes fail validation.
func (r *PredictionRequest) Normalize() {
	r.County = strings.ToUpper(strings.TrimSpace(r.County))
	r.Postcode = strings.ToUpper(strings.TrimSpace(r.Postcode))
}

// ToInput converts a validated request to the engine input.
func (r *PredictionRequest) ToInput() forecast.Input {
	return forecast.Input{
		PropertyType: r.PropertyType,
		OldNew:       r.OldNew,
		Duration:     r.Duration,
		County:       r.County,
		Postcode:     r.Postcode,
		Year:         r.Year,
	}
}
