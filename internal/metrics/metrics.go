// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction outcomes used as the "outcome" label.
const (
	OutcomeSuccess         = "success"
	OutcomeNotReady        = "not_ready"
	OutcomeUnknownCategory = "unknown_category"
	OutcomeFailure         = "failure"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Prediction Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuator_predictions_total",
			Help: "Total number of price predictions by outcome",
		},
		[]string{"outcome"},
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "valuator_prediction_duration_seconds",
			Help:    "Time spent encoding and evaluating one prediction",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		},
	)

	CategoryFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuator_category_fallbacks_total",
			Help: "Lookups that fell back to the UNKNOWN target encoding",
		},
		[]string{"field"}, // "county", "postcode_region"
	)

	PredictionCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuator_prediction_cache_lookups_total",
			Help: "Prediction cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	PredictionCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "valuator_prediction_cache_evictions_total",
			Help: "Cached predictions evicted to make room",
		},
	)

	// Model Metrics
	ModelLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "valuator_model_loaded",
			Help: "1 when a model bundle is published, 0 otherwise",
		},
	)

	ModelTrees = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "valuator_model_trees",
			Help: "Number of trees in the loaded ensemble",
		},
	)

	ModelLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "valuator_model_load_duration_seconds",
			Help: "Duration of the last model bundle load",
		},
	)

	ModelLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "valuator_model_load_errors_total",
			Help: "Total number of rejected model bundle loads",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordPrediction records one prediction attempt. Duration is only observed
// for successful predictions.
func RecordPrediction(outcome string, duration time.Duration) {
	PredictionsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		PredictionDuration.Observe(duration.Seconds())
	}
}

// RecordCategoryFallback counts a target-encoding lookup that used UNKNOWN.
func RecordCategoryFallback(field string) {
	CategoryFallbacks.WithLabelValues(field).Inc()
}

// RecordPredictionCache records one cache lookup and whether storing its
// result evicted an older entry.
func RecordPredictionCache(hit, evicted bool) {
	if hit {
		PredictionCacheLookups.WithLabelValues("hit").Inc()
	} else {
		PredictionCacheLookups.WithLabelValues("miss").Inc()
	}
	if evicted {
		PredictionCacheEvictions.Inc()
	}
}

// RecordModelLoad records the result of a bundle load.
func RecordModelLoad(duration time.Duration, trees int, err error) {
	if err != nil {
		ModelLoadErrors.Inc()
		return
	}
	ModelLoaded.Set(1)
	ModelTrees.Set(float64(trees))
	ModelLoadDuration.Set(duration.Seconds())
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// UpdateUptime sets the uptime gauge from the process start time.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
