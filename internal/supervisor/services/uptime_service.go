// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package services

import (
	"context"
	"time"

	"github.com/tomtom215/valuator/internal/metrics"
)

// DefaultUptimeInterval is how often the uptime gauge is refreshed.
const DefaultUptimeInterval = 15 * time.Second

// UptimeService keeps the app_uptime_seconds gauge current.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

// NewUptimeService measures uptime from start. A non-positive interval uses
// DefaultUptimeInterval.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = DefaultUptimeInterval
	}
	return &UptimeService{start: start, interval: interval}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	metrics.UpdateUptime(u.start)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			metrics.UpdateUptime(u.start)
		}
	}
}

func (u *UptimeService) String() string {
	return "uptime"
}
