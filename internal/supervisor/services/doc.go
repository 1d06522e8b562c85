// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
//   - UptimeService: refreshes the app_uptime_seconds gauge on a ticker
//
// Each Serve blocks until its context is canceled and returns ctx.Err(), or
// returns early with an error so the supervisor restarts it.
package services
