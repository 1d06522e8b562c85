// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/valuator/internal/metrics"
)

func TestNewUptimeServiceDefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		if got := NewUptimeService(time.Now(), interval).interval; got != DefaultUptimeInterval {
			t.Errorf("interval for %v = %v, want %v", interval, got, DefaultUptimeInterval)
		}
	}
}

func TestUptimeServiceServe(t *testing.T) {
	svc := NewUptimeService(time.Now().Add(-time.Hour), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for testutil.ToFloat64(metrics.AppUptime) < 3600 {
		if time.Now().After(deadline) {
			t.Fatalf("uptime gauge = %v, want >= 3600", testutil.ToFloat64(metrics.AppUptime))
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	if svc.String() != "uptime" {
		t.Errorf("String() = %q", svc.String())
	}
}
