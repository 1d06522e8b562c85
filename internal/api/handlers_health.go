// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/valuator/internal/models"
)

// Root describes the service.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.RootResponse{
		Message: "Valuator Property Price API",
		Version: models.Version,
		Docs:    "/api/v1/model/info",
		Health:  "/api/v1/health",
	})
}

// Health reports service status and whether the model is loaded. The service
// is "healthy" whenever it can answer; load state is in model_loaded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		ModelLoaded: h.engine.Ready(),
		Version:     models.Version,
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Always returns 200 OK if the process is running
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.ProbeResponse{Status: "alive"})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only once the model is loaded, 503 before that
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.engine.Ready() {
		respondJSON(w, r, http.StatusServiceUnavailable, &models.ProbeResponse{Status: "not_ready"})
		return
	}
	respondJSON(w, r, http.StatusOK, &models.ProbeResponse{Status: "ready"})
}

// ModelInfo returns the loaded model's metadata. Before load every field but
// loaded is null.
func (h *Handler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	info := h.engine.Describe()
	respondJSON(w, r, http.StatusOK, &info)
}
