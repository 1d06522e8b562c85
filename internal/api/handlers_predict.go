// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package api

import (
	"net/http"

	"github.com/tomtom215/valuator/internal/logging"
	"github.com/tomtom215/valuator/internal/models"
	"github.com/tomtom215/valuator/internal/validation"
)

// Predict prices one property from a models.PredictionRequest body.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req models.PredictionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrorTypeInvalidJSON, detailInvalidData+err.Error(), err)
		return
	}

	req.Normalize()
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, detailInvalidData+apiErr.Message, verr)
		return
	}

	result, err := h.engine.Predict(req.ToInput())
	if err != nil {
		respondPredictionError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("property_type", req.PropertyType).
		Str("county", logging.SanitizeValue(req.County)).
		Int("year", req.Year).
		Float64("predicted_price", result.PredictedPrice).
		Msg("prediction served")

	respondJSON(w, r, http.StatusOK, result)
}
