// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package logging

import (
	"strings"
	"unicode"
)

// Longest values written to a log line.
const (
	maxValueLen = 64
	maxErrorLen = 200
)

// SanitizeValue prepares a client-supplied value for a log field: control
// characters are replaced so a value cannot forge additional log lines, and
// long values are truncated.
func SanitizeValue(value string) string {
	return truncateString(replaceControl(value), maxValueLen)
}

// SanitizeError truncates an error message for logging.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return truncateString(replaceControl(err.Error()), maxErrorLen)
}

func replaceControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '?'
		}
		return r
	}, s)
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
