// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package forecast

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaMismatch indicates the loaded metadata lists features other
	// than the six the encoder produces. Load-time, fatal.
	ErrSchemaMismatch = errors.New("feature schema mismatch")

	// ErrModelNotReady is returned by Predict before a bundle is loaded.
	ErrModelNotReady = errors.New("model not loaded")

	// ErrUnknownCategory indicates a category letter with no fitted code.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrPredictionFailure covers any unexpected error during inference.
	ErrPredictionFailure = errors.New("prediction failed")
)

// CategoryError names the field and value that could not be label-encoded.
type CategoryError struct {
	Field string
	Value string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("unknown category %q for %s", e.Value, e.Field)
}

// Is reports whether target is ErrUnknownCategory.
func (e *CategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}
