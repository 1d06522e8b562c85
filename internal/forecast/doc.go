// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

/*
Package forecast turns raw property attributes into a price prediction.

# Encoding

Encode produces six values in FeatureNames order:

	property_type_enc    label-encoded property type (D, S, T, F, O)
	county_enc           county target encoding
	postcode_region_enc  postcode outward-code target encoding
	old_new_enc          label-encoded new build flag (Y, N)
	duration_enc         label-encoded tenure (F, L, U)
	year                 sale year

A letter absent from a fitted label encoder is an error (*CategoryError).
Counties and postcode regions are looked up exactly and fall back to the
table's UNKNOWN entry on a miss; the Encoding records which branch was
taken.

# Prediction

Every tree is evaluated on the vector. The model predicts log price, so the
point estimate is exp(mean of tree outputs) and the interval is exp of the
10th and 90th percentiles of the tree outputs, each exponentiated on its own.
Values are rounded to two decimals and the interval is widened to contain
the point estimate.

	engine := forecast.NewEngine(artifact.NewStore(logger), logger)
	if err := engine.Load(ctx, "models"); err != nil {
	    log.Fatal().Err(err).Msg("model load failed")
	}
	res, err := engine.Predict(forecast.Input{
	    PropertyType: "T", OldNew: "N", Duration: "F",
	    County: "Greater London", Postcode: "SW1A 1AA", Year: 2024,
	})
*/
package forecast
