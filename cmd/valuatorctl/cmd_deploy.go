// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/valuator/internal/artifact"
)

type deployFlags struct {
	from     string
	to       string
	noVerify bool
	timeout  time.Duration
}

func newDeployCmd() *cobra.Command {
	var flags deployFlags

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Copy a trained bundle into the serving models directory",
		Long: "deploy copies the four final_* artifacts (plain or .gz) from the\n" +
			"training output into the serving directory. Missing artifacts are\n" +
			"reported and skipped. The deployed bundle is then loaded to check it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeploy(cmd, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.from, "from", "", "Training output directory (required)")
	f.StringVar(&flags.to, "to", defaultModelsDir, "Serving models directory")
	f.BoolVar(&flags.noVerify, "no-verify", false, "Skip loading the deployed bundle")
	f.DurationVar(&flags.timeout, "timeout", 2*time.Minute, "Verification load timeout")

	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func runDeploy(cmd *cobra.Command, flags *deployFlags) error {
	out := cmd.OutOrStdout()

	from, err := filepath.Abs(flags.from)
	if err != nil {
		return err
	}
	to, err := filepath.Abs(flags.to)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Source: %s\n", from)
	fmt.Fprintf(out, "Target: %s\n", to)
	fmt.Fprintf(out, "Artifacts to deploy: %d\n\n", len(artifact.RequiredFiles))

	results, err := artifact.CopyBundle(from, to)
	missing := 0
	for _, r := range results {
		if r.Missing {
			missing++
			fmt.Fprintf(out, "NOT FOUND: %s\n", r.Name)
			for _, name := range r.Removed {
				fmt.Fprintf(out, "REMOVED:   %s (stale copy in target)\n", name)
			}
			continue
		}
		fmt.Fprintf(out, "COPIED:    %s (%s)\n", r.Name, formatSize(r.Size))
	}
	if err != nil {
		return fmt.Errorf("deploy: %w", err)
	}

	if flags.noVerify {
		fmt.Fprintf(out, "\nDeployed %d of %d artifacts (not verified)\n", len(results)-missing, len(results))
		return nil
	}

	engine, err := loadEngine(cmd.Context(), to, flags.timeout)
	if err != nil {
		return fmt.Errorf("verify deployed bundle: %w", err)
	}
	info := engine.Describe()
	fmt.Fprintf(out, "\nVerified: %s with %s trees, trained %s\n",
		deref(info.ModelType), derefInt(info.NEstimators), deref(info.TrainedDate))
	return nil
}
