// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

/*
Package config loads and validates service configuration.

# Configuration Sources

Sources are layered with koanf, later ones overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: CONFIG_PATH, or the first of config.yaml, config.yml,
    /etc/valuator/config.yaml, /etc/valuator/config.yml that exists
 3. Environment variables

Only the environment variables listed below are read. Any other variable is
ignored.

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Per-request handler timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

Model:
  - MODELS_DIR: Directory holding the trained artifacts (default: models)
  - MODEL_LOAD_TIMEOUT: Startup load bound (default: 2m)
  - PREDICTION_CACHE_SIZE: Cached prediction results, 0 disables (default: 1024)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per client IP (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

# YAML Example

	server:
	  port: 8000
	  environment: production
	model:
	  dir: /srv/valuator/models
	security:
	  cors_origins:
	    - https://valuator.example.com
	logging:
	  level: info

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}
*/
package config
