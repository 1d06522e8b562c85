// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

// Package artifact loads and holds the trained model bundle.
//
// A bundle is four documents exported by the training pipeline into a
// single directory:
//
//	final_model.json             ensemble of regression trees
//	final_label_encoders.json    fitted class lists per categorical field
//	final_target_encodings.json  county and postcode-region lookup tables
//	final_metadata.json          model type, tree count, features, scores
//
// Any file may instead be stored gzip-compressed as <name>.json.gz.
//
// # Trees
//
// Trees are held as node arenas: a flat slice of records indexed by integer
// id, each with a split feature, a threshold and child ids, or a leaf value.
// The loader rejects arenas whose children do not point strictly forward,
// which makes every evaluation a bounded forward walk.
//
// # Lifecycle
//
//	store := artifact.NewStore(logger)
//	if err := store.Load(ctx, "models", check); err != nil {
//	    // ErrArtifactMissing, ErrArtifactCorrupt, or an error from check
//	}
//	b := store.Bundle() // immutable, safe for concurrent use
//
// Load publishes through an atomic pointer after the bundle is fully built.
// The read path takes no locks.
//
// # Deployment
//
// CopyBundle copies a bundle from a training output directory into a serving
// directory. Each file lands through a temp file and rename, and the other
// compression form of the same artifact is removed so a stale copy is never
// resolved ahead of the new one.
package artifact
