// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

// Command server runs the Valuator property price API.
//
// Startup order:
//
//  1. Configuration: defaults, then config.yaml, then environment (koanf v2)
//  2. Logging: zerolog from LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//  3. Model: the four artifacts are loaded from MODELS_DIR; any failure exits
//  4. Supervisor: the HTTP server and uptime gauge run under suture
//
// SIGINT and SIGTERM stop accepting connections and give in-flight requests
// ten seconds to finish.
//
// # Example
//
//	export MODELS_DIR=/srv/valuator/models
//	export HTTP_PORT=8000
//	export CORS_ORIGINS=https://valuator.example.com
//	export ENVIRONMENT=production
//	./server
//
// Endpoints are listed in internal/api.
package main
