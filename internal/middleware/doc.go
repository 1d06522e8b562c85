// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

/*
Package middleware provides HTTP middleware components for the API router.

Key Components:

  - RequestID: per-request ID in the X-Request-ID header and the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge per chi route
  - RequestLogger: one zerolog line per request, escalating slow and failed ones

All three use the standard func(http.Handler) http.Handler shape and mount
directly on a chi router:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(time.Second))
	r.Use(middleware.PrometheusMetrics)

RequestID must come first so later layers log the request ID.
*/
package middleware
