// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/valuator/internal/artifact"
)

type inspectFlags struct {
	dir     string
	json    bool
	timeout time.Duration
}

func newInspectCmd() *cobra.Command {
	var flags inspectFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load a bundle and print its metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.dir, "dir", defaultModelsDir, "Model artifact directory")
	f.BoolVar(&flags.json, "json", false, "Print model info as JSON")
	f.DurationVar(&flags.timeout, "timeout", 2*time.Minute, "Load timeout")
	return cmd
}

func runInspect(cmd *cobra.Command, flags *inspectFlags) error {
	engine, err := loadEngine(cmd.Context(), flags.dir, flags.timeout)
	if err != nil {
		return err
	}
	info := engine.Describe()

	out := cmd.OutOrStdout()
	if flags.json {
		return writeJSON(out, info)
	}

	paths, err := artifact.ResolvePaths(flags.dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Directory:        %s\n", flags.dir)
	fmt.Fprintf(out, "Model type:       %s\n", deref(info.ModelType))
	fmt.Fprintf(out, "Estimators:       %s\n", derefInt(info.NEstimators))
	fmt.Fprintf(out, "Training samples: %s\n", derefInt(info.TrainingSamples))
	fmt.Fprintf(out, "CV R2 (mean):     %s\n", derefFloat(info.CVR2Mean))
	fmt.Fprintf(out, "Expected R2:      %s\n", derefFloat(info.ExpectedR2))
	fmt.Fprintf(out, "Trained:          %s\n", deref(info.TrainedDate))
	fmt.Fprintf(out, "Features:         %s\n", strings.Join(info.Features, ", "))
	fmt.Fprintf(out, "Files:\n")
	for _, stem := range artifact.RequiredFiles {
		fmt.Fprintf(out, "  %s\n", paths[stem])
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func derefInt(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}

func derefFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *f)
}
