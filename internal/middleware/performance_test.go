// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/valuator/internal/logging"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Logger()
	prevLevel := zerolog.GlobalLevel()
	logging.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		logging.SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name   string
		status int
		delay  time.Duration
		level  string
	}{
		{"ok", http.StatusOK, 0, "debug"},
		{"client error", http.StatusBadRequest, 0, "debug"},
		{"server error", http.StatusServiceUnavailable, 0, "error"},
		{"slow", http.StatusOK, 20 * time.Millisecond, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			handler := RequestID(RequestLogger(10 * time.Millisecond)(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					time.Sleep(tt.delay)
					w.WriteHeader(tt.status)
				})))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			var entry map[string]interface{}
			if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v: %s", err, buf.String())
			}
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %s", entry["level"], tt.level)
			}
			if entry["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %d", entry["status"], tt.status)
			}
			if entry["method"] != http.MethodPost {
				t.Errorf("method = %v, want POST", entry["method"])
			}
			if entry["request_id"] != rec.Header().Get(RequestIDHeader) {
				t.Errorf("request_id = %v, want %s", entry["request_id"], rec.Header().Get(RequestIDHeader))
			}
		})
	}
}

func TestRequestLogger_SanitizesPath(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestLogger(0)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/"+strings.Repeat("x", 200), nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	path, _ := entry["path"].(string)
	if !strings.HasSuffix(path, "...") {
		t.Errorf("path %q was not truncated", path)
	}
}
