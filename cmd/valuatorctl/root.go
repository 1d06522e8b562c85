// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/valuator/internal/models"
)

type rootFlags struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:          "valuatorctl",
		Short:        "Inspect, query and deploy Valuator model bundles",
		Long:         "valuatorctl works directly on a model artifact directory: it reports\nbundle metadata, runs single predictions offline, and deploys a trained\nbundle into the directory the server loads from.",
		Version:      models.Version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(*cobra.Command, []string) {
			configureLogging(flags.logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level for load diagnostics (debug, info, warn, error)")

	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newPredictCmd())
	cmd.AddCommand(newDeployCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
