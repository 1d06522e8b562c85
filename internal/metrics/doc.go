// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Prediction Metrics:
  - valuator_predictions_total: Predictions by outcome (counter)
    Labels: outcome (success, not_ready, unknown_category, failure)
  - valuator_prediction_duration_seconds: Encode plus ensemble evaluation (histogram)
  - valuator_category_fallbacks_total: UNKNOWN target-encoding hits (counter)
    Labels: field (county, postcode_region)

Model Metrics:
  - valuator_model_loaded: 1 once the bundle is published (gauge)
  - valuator_model_trees: Trees in the loaded ensemble (gauge)
  - valuator_model_load_duration_seconds: Last load duration (gauge)
  - valuator_model_load_errors_total: Rejected loads (counter)

System Metrics:
  - app_info: Version and Go version labels (gauge)
  - app_uptime_seconds: Process uptime (gauge)

# Example Queries

Prediction error ratio:

	sum(rate(valuator_predictions_total{outcome!="success"}[5m]))
	  / sum(rate(valuator_predictions_total[5m]))

Share of predictions with an unseen county:

	rate(valuator_category_fallbacks_total{field="county"}[5m])
	  / rate(valuator_predictions_total{outcome="success"}[5m])

p99 prediction latency:

	histogram_quantile(0.99, rate(valuator_prediction_duration_seconds_bucket[5m]))
*/
package metrics
