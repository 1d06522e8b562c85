// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

/*
Package models defines the JSON request and response bodies of the HTTP API.

The shapes match what the existing web frontend already consumes, so field
names use snake_case and several fields are nullable rather than omitted.

Request:

	{
	  "property_type": "T",
	  "old_new": "N",
	  "duration": "F",
	  "county": "GREATER LONDON",
	  "postcode": "SW1A 1AA",
	  "year": 2024
	}

Error:

	{
	  "detail": "Model not loaded. Please try again in a few seconds.",
	  "error_type": "MODEL_NOT_READY",
	  "timestamp": "2026-01-15T12:00:00Z"
	}

Prediction results and model info are defined next to the code that produces
them (forecast.Result, artifact.ModelInfo) and are encoded directly.
*/
package models
