// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/valuator/internal/artifact"
	"github.com/tomtom215/valuator/internal/forecast"
	"github.com/tomtom215/valuator/internal/logging"
)

const defaultModelsDir = "models"

func configureLogging(level string) {
	logging.Init(logging.Config{
		Level:     level,
		Format:    "console",
		Timestamp: true,
		Output:    os.Stderr,
	})
}

// loadEngine loads the bundle in dir into a fresh engine.
func loadEngine(ctx context.Context, dir string, timeout time.Duration) (*forecast.Engine, error) {
	logger := logging.Logger()
	engine := forecast.NewEngine(artifact.NewStore(logger), logger)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := engine.Load(ctx, dir); err != nil {
		return nil, fmt.Errorf("load %s: %w", dir, err)
	}
	return engine, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// formatSize renders n bytes in MB with two decimals.
func formatSize(n int64) string {
	return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
}
