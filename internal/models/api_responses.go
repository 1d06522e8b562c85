// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package models

import (
	"time"
)

// Version is the API version reported by the root and health endpoints.
const Version = "1.0.0"

// Error type codes carried in ErrorResponse.ErrorType.
const (
	ErrorTypeValidation      = "VALIDATION_ERROR"
	ErrorTypeInvalidJSON     = "INVALID_JSON"
	ErrorTypeUnknownCategory = "UNKNOWN_CATEGORY"
	ErrorTypeModelNotReady   = "MODEL_NOT_READY"
	ErrorTypePrediction      = "PREDICTION_ERROR"
	ErrorTypeNotFound        = "NOT_FOUND"
	ErrorTypeMethod          = "METHOD_NOT_ALLOWED"
	ErrorTypeRateLimited     = "RATE_LIMITED"
	ErrorTypeInternal        = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail    string    `json:"detail"`
	ErrorType string    `json:"error_type"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse reports liveness and whether the model is loaded. Status is
// "healthy" whenever the process can answer.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	ModelLoaded bool      `json:"model_loaded"`
	Version     string    `json:"version"`
}

// ProbeResponse is returned by the liveness and readiness probes.
type ProbeResponse struct {
	Status string `json:"status"`
}

// RootResponse describes the service at "/".
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}
