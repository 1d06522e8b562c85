// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/valuator/internal/models"
	"github.com/tomtom215/valuator/internal/validation"
)

type predictFlags struct {
	dir     string
	timeout time.Duration
	req     models.PredictionRequest
}

func newPredictCmd() *cobra.Command {
	var flags predictFlags

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the price of one property offline",
		Example: "  valuatorctl predict --dir models --property-type T --old-new N --duration F \\\n" +
			"    --county \"Greater London\" --postcode \"SW1A 1AA\" --year 2024",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPredict(cmd, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.dir, "dir", defaultModelsDir, "Model artifact directory")
	f.DurationVar(&flags.timeout, "timeout", 2*time.Minute, "Load timeout")
	f.StringVar(&flags.req.PropertyType, "property-type", "", "D, S, T, F or O (required)")
	f.StringVar(&flags.req.OldNew, "old-new", "N", "Y for new build, N otherwise")
	f.StringVar(&flags.req.Duration, "duration", "F", "F freehold, L leasehold, U unknown")
	f.StringVar(&flags.req.County, "county", "", "County name (required)")
	f.StringVar(&flags.req.Postcode, "postcode", "", "UK postcode (required)")
	f.IntVar(&flags.req.Year, "year", time.Now().Year(), "Transaction year")

	_ = cmd.MarkFlagRequired("property-type")
	_ = cmd.MarkFlagRequired("county")
	_ = cmd.MarkFlagRequired("postcode")
	return cmd
}

func runPredict(cmd *cobra.Command, flags *predictFlags) error {
	req := flags.req
	req.Normalize()
	if verr := validation.ValidateStruct(&req); verr != nil {
		return fmt.Errorf("invalid input: %w", verr)
	}

	engine, err := loadEngine(cmd.Context(), flags.dir, flags.timeout)
	if err != nil {
		return err
	}

	res, err := engine.Predict(req.ToInput())
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), res)
}
