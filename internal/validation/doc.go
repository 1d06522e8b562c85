// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator and turns its field
// errors into short messages keyed by the JSON field name, so a request body
// field "property_type" is reported as "property_type", not "PropertyType".
//
// Postcodes are only bounded in length and restricted to printable ASCII
// (printascii). Any other outline is accepted; the encoder maps regions it
// has not seen to UNKNOWN.
//
// # Usage
//
//	type PredictionRequest struct {
//	    PropertyType string `json:"property_type" validate:"required,oneof=D S T F O"`
//	    Postcode     string `json:"postcode" validate:"required,min=5,max=10,printascii"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	    // apiErr.Message == "postcode must be at least 5 characters"
//	}
//
// ValidateStruct returns a concrete *RequestValidationError. Compare it to
// nil before assigning it to an error variable.
package validation
