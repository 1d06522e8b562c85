// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

/*
Package api provides the HTTP interface to the prediction engine.

# Endpoints

	GET  /                      service name, version and links
	GET  /health                health status
	GET  /api/v1/               health status
	GET  /api/v1/health         health status
	GET  /api/v1/health/live    liveness probe, always 200
	GET  /api/v1/health/ready   readiness probe, 503 until the model is loaded
	GET  /api/v1/model/info     loaded model metadata
	POST /api/v1/predict        price one property
	GET  /metrics               Prometheus exposition

# Errors

Every non-2xx response carries models.ErrorResponse:

	400 VALIDATION_ERROR   request fields failed validation
	400 INVALID_JSON       body is not a JSON object of the expected shape
	400 UNKNOWN_CATEGORY   a code has no fitted encoding
	404 NOT_FOUND          no such route
	405 METHOD_NOT_ALLOWED wrong method for the route
	429 RATE_LIMITED       per-IP request limit reached
	503 MODEL_NOT_READY    model not loaded yet
	500 PREDICTION_ERROR   inference failed

# Middleware

Global, in order: RequestID, RealIP, RequestLogger, Recoverer, CORS,
PrometheusMetrics. The /api/v1 group adds security headers, rate limiting,
the handler timeout and gzip for clients that accept it.
*/
package api
