// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

// Command valuatorctl is the operator tool for model bundles.
//
//	valuatorctl inspect --dir models
//	valuatorctl predict --dir models --property-type S --county Surrey --postcode "GU1 1AA"
//	valuatorctl deploy --from notebooks/models --to api/models
//
// deploy reports each artifact as COPIED with its size or NOT FOUND, then
// loads the deployed directory the same way the server does. Pass
// --no-verify to skip the load.
package main
