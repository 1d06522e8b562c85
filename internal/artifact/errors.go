// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package artifact

import (
	"errors"
	"fmt"
)

// Load-time errors. All of them are fatal for a serving process.
var (
	// ErrArtifactMissing indicates one of the required artifact files is absent.
	ErrArtifactMissing = errors.New("artifact missing")

	// ErrArtifactCorrupt indicates an artifact could not be decoded or is
	// inconsistent with the bundle metadata.
	ErrArtifactCorrupt = errors.New("artifact corrupt")

	// ErrAlreadyLoaded is returned by a second Load on the same Store.
	ErrAlreadyLoaded = errors.New("artifact bundle already loaded")
)

// MissingError names the artifact file that could not be found.
type MissingError struct {
	Dir  string
	File string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("artifact missing: %s not found in %s", e.File, e.Dir)
}

// Is reports whether target is ErrArtifactMissing.
func (e *MissingError) Is(target error) bool {
	return target == ErrArtifactMissing
}

// CorruptError describes why an artifact file was rejected.
type CorruptError struct {
	File   string
	Reason string
	Err    error
}

func (e *CorruptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("artifact corrupt: %s: %s: %v", e.File, e.Reason, e.Err)
	}
	return fmt.Sprintf("artifact corrupt: %s: %s", e.File, e.Reason)
}

// Is reports whether target is ErrArtifactCorrupt.
func (e *CorruptError) Is(target error) bool {
	return target == ErrArtifactCorrupt
}

// Unwrap returns the underlying decode error, if any.
func (e *CorruptError) Unwrap() error {
	return e.Err
}

// corrupt reports a consistency failure in the artifact with the given stem.
func corrupt(stem, format string, args ...interface{}) *CorruptError {
	return &CorruptError{File: stem + jsonExt, Reason: fmt.Sprintf(format, args...)}
}
