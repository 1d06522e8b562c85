// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/valuator/internal/forecast"
	"github.com/tomtom215/valuator/internal/logging"
	"github.com/tomtom215/valuator/internal/models"
)

// maxBodyBytes bounds request bodies. A prediction request is well under 1 KiB.
const maxBodyBytes = 64 << 10

// Fixed response details shared with the web frontend.
const (
	detailModelNotReady = "Model not loaded. Please try again in a few seconds."
	detailInvalidData   = "Invalid data: "
	detailPrediction    = "Prediction error: "
)

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an ErrorResponse. Server-side errors are logged with the
// request ID; client errors at debug.
func respondError(w http.ResponseWriter, r *http.Request, status int, errorType, detail string, err error) {
	logger := logging.Ctx(r.Context())
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	if err != nil {
		event = event.Str("error", logging.SanitizeError(err))
	}
	event.
		Int("status", status).
		Str("error_type", errorType).
		Msg("API error")

	respondJSON(w, r, status, &models.ErrorResponse{
		Detail:    detail,
		ErrorType: errorType,
		Timestamp: time.Now().UTC(),
	})
}

// respondPredictionError maps an engine error to its HTTP status.
func respondPredictionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, forecast.ErrModelNotReady):
		respondError(w, r, http.StatusServiceUnavailable, models.ErrorTypeModelNotReady, detailModelNotReady, err)
	case errors.Is(err, forecast.ErrUnknownCategory):
		respondError(w, r, http.StatusBadRequest, models.ErrorTypeUnknownCategory, detailInvalidData+err.Error(), err)
	default:
		respondError(w, r, http.StatusInternalServerError, models.ErrorTypePrediction, detailPrediction+err.Error(), err)
	}
}

// decodeJSON reads exactly one JSON value from the body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		default:
			return fmt.Errorf("malformed JSON body: %w", err)
		}
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
