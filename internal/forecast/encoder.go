// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package forecast

import (
	"fmt"
	"strings"

	"github.com/tomtom215/valuator/internal/artifact"
)

// Feature names, in vector order.
const (
	FeaturePropertyType   = "property_type_enc"
	FeatureCounty         = "county_enc"
	FeaturePostcodeRegion = "postcode_region_enc"
	FeatureOldNew         = "old_new_enc"
	FeatureDuration       = "duration_enc"
	FeatureYear           = "year"
)

// FeatureNames is the only vector layout the encoder produces.
var FeatureNames = []string{
	FeaturePropertyType,
	FeatureCounty,
	FeaturePostcodeRegion,
	FeatureOldNew,
	FeatureDuration,
	FeatureYear,
}

// inwardCodeLen is the length of the trailing "digit letter letter" part of
// a UK postcode.
const inwardCodeLen = 3

// Input is one property to price. County and Postcode are normalized by the
// encoder regardless of what the caller already did.
type Input struct {
	PropertyType string
	OldNew       string
	Duration     string
	County       string
	Postcode     string
	Year         int
}

// Encoding is an encoded feature vector plus how each target-encoded field
// was resolved.
type Encoding struct {
	Vector []float64

	County           string
	CountyFallback   bool
	PostcodeRegion   string
	PostcodeFallback bool
}

// CheckSchema rejects a bundle whose metadata features differ from
// FeatureNames in length, names or order.
func CheckSchema(b *artifact.Bundle) error {
	got := b.Metadata.Features
	if len(got) != len(FeatureNames) {
		return fmt.Errorf("%w: model lists %d features, encoder produces %d",
			ErrSchemaMismatch, len(got), len(FeatureNames))
	}
	for i, name := range FeatureNames {
		if got[i] != name {
			return fmt.Errorf("%w: feature %d is %q, encoder produces %q",
				ErrSchemaMismatch, i, got[i], name)
		}
	}
	return nil
}

// NormalizeCounty trims and upper-cases a county name.
func NormalizeCounty(county string) string {
	return strings.ToUpper(strings.TrimSpace(county))
}

// NormalizePostcode trims and upper-cases a postcode.
func NormalizePostcode(postcode string) string {
	return strings.ToUpper(strings.TrimSpace(postcode))
}

// PostcodeRegion returns the outward code of a postcode: the block before
// the first whitespace ("SW1A 1AA" is "SW1A"). A postcode written without a
// space has its inward code removed when it is longer than three characters.
func PostcodeRegion(postcode string) string {
	p := NormalizePostcode(postcode)
	fields := strings.Fields(p)
	if len(fields) == 0 {
		return ""
	}
	if len(fields) > 1 {
		return fields[0]
	}
	if len(p) > inwardCodeLen {
		return p[:len(p)-inwardCodeLen]
	}
	return p
}

// Encode maps in to the feature vector expected by b. It fails only with a
// *CategoryError; unseen counties and postcode regions use the UNKNOWN
// entry of their table.
func Encode(b *artifact.Bundle, in Input) (Encoding, error) {
	propertyType, err := labelEncode(b, artifact.FieldPropertyType, in.PropertyType)
	if err != nil {
		return Encoding{}, err
	}
	oldNew, err := labelEncode(b, artifact.FieldOldNew, in.OldNew)
	if err != nil {
		return Encoding{}, err
	}
	duration, err := labelEncode(b, artifact.FieldDuration, in.Duration)
	if err != nil {
		return Encoding{}, err
	}

	enc := Encoding{
		County:         NormalizeCounty(in.County),
		PostcodeRegion: PostcodeRegion(in.Postcode),
	}

	county, ok := b.County.Exact(enc.County)
	if !ok {
		county = b.County.Fallback()
		enc.CountyFallback = true
	}

	region, ok := b.Postcode.Exact(enc.PostcodeRegion)
	if !ok {
		region = b.Postcode.Fallback()
		enc.PostcodeFallback = true
	}

	enc.Vector = []float64{
		float64(propertyType),
		county,
		region,
		float64(oldNew),
		float64(duration),
		float64(in.Year),
	}
	return enc, nil
}

func labelEncode(b *artifact.Bundle, field, code string) (int, error) {
	enc, ok := b.Encoder(field)
	if !ok {
		return 0, &CategoryError{Field: field, Value: code}
	}
	i, ok := enc.Transform(code)
	if !ok {
		return 0, &CategoryError{Field: field, Value: code}
	}
	return i, nil
}
