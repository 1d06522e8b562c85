// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

/*
Package supervisor runs the service's long-lived components under suture v4.

	valuator
	├── telemetry-layer
	│   └── UptimeService
	└── api-layer
	    └── HTTPServerService

A crashed service is restarted with backoff; after FailureThreshold failures
within the decay window its supervisor backs off for FailureBackoff.
Canceling the context passed to Serve stops every layer, each service
getting ShutdownTimeout to return.

Supervisor events are logged through slog. The server passes
logging.NewSlogLogger so they land in the same zerolog stream as everything
else:

	tree, err := supervisor.NewSupervisorTree(
	    logging.NewSlogLogger(logging.WithComponent("supervisor")),
	    supervisor.DefaultTreeConfig(),
	)
	tree.AddTelemetryService(services.NewUptimeService(start, 0))
	tree.AddAPIService(services.NewHTTPServerService(srv, addr, 10*time.Second, logger))
	err = tree.Serve(ctx)
*/
package supervisor
