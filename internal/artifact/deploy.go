// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package artifact

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyResult describes one artifact handled by CopyBundle.
type CopyResult struct {
	// Stem is the artifact stem, e.g. final_model.
	Stem string

	// Name is the file name copied, or the plain name when Missing.
	Name string

	// Size is the number of bytes written.
	Size int64

	// Missing is set when the source has neither form of the artifact.
	Missing bool

	// Removed lists stale target files deleted because the source lacked
	// the artifact.
	Removed []string
}

// CopyBundle copies every artifact present in from into to, creating to if
// needed. Missing artifacts are skipped and reported in the results. Each
// file is written to a temporary name and renamed into place; the other
// compression form of the same stem is then removed from to so the copied
// file is the one a later Load resolves. Both forms of a missing artifact are
// removed from to, so a verifying Load cannot pass on an older copy.
func CopyBundle(from, to string) ([]CopyResult, error) {
	if err := os.MkdirAll(to, 0o750); err != nil {
		return nil, fmt.Errorf("create target directory: %w", err)
	}

	results := make([]CopyResult, 0, len(RequiredFiles))
	for _, stem := range RequiredFiles {
		src, err := Resolve(from, stem)
		if errors.Is(err, ErrArtifactMissing) {
			removed, err := removeAlternate(to, stem, "")
			if err != nil {
				return results, err
			}
			results = append(results, CopyResult{Stem: stem, Name: stem + jsonExt, Missing: true, Removed: removed})
			continue
		}
		if err != nil {
			return results, err
		}

		name := filepath.Base(src)
		size, err := copyFile(src, filepath.Join(to, name))
		if err != nil {
			return results, fmt.Errorf("copy %s: %w", name, err)
		}
		if _, err := removeAlternate(to, stem, name); err != nil {
			return results, err
		}
		results = append(results, CopyResult{Stem: stem, Name: name, Size: size})
	}
	return results, nil
}

// removeAlternate deletes every form of stem in dir except kept and returns
// the names it deleted.
func removeAlternate(dir, stem, kept string) ([]string, error) {
	var removed []string
	for _, name := range []string{stem + jsonExt, stem + jsonExt + gzExt} {
		if name == kept {
			continue
		}
		err := os.Remove(filepath.Join(dir, name))
		switch {
		case err == nil:
			removed = append(removed, name)
		case !errors.Is(err, os.ErrNotExist):
			return removed, fmt.Errorf("remove stale %s: %w", name, err)
		}
	}
	return removed, nil
}

// copyFile copies src to dst through a temporary file in dst's directory.
//
//nolint:gosec // G304: paths come from operator flags
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close() //nolint:errcheck // read-only file

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()

	n, err := io.Copy(tmp, in)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpName, 0o640)
	}
	if err == nil {
		err = os.Rename(tmpName, dst)
	}
	if err != nil {
		os.Remove(tmpName) //nolint:errcheck // best effort cleanup on error
		return 0, err
	}
	return n, nil
}
