package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/zerr"
)

// Resolver finds artifact files in an output directory.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Glob returns the sorted regular files in dir whose name matches pattern.
func (r *Resolver) Glob(dir, pattern string) ([]string, error) {
	path := filepath.Join(dir, pattern)
	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	slices.Sort(files)
	return files, nil
}

// Newest returns the most recently modified file in dir matching pattern,
// or "" when nothing matches.
func (r *Resolver) Newest(dir, pattern string) (string, error) {
	files, err := r.Glob(dir, pattern)
	if err != nil {
		return "", err
	}

	var newest string
	var newestTime time.Time
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest, newestTime = f, info.ModTime()
		}
	}
	return newest, nil
}

// RemoveMatching deletes every file in dir matching one of patterns and
// returns the removed paths.
func (r *Resolver) RemoveMatching(dir string, patterns ...string) ([]string, error) {
	var removed []string
	for _, pattern := range patterns {
		files, err := r.Glob(dir, pattern)
		if err != nil {
			return removed, err
		}
		for _, f := range files {
			if err := os.Remove(f); err != nil && !errors.Is(err, iofs.ErrNotExist) {
				return removed, zerr.With(zerr.Wrap(err, "failed to remove file"), "path", f)
			}
			removed = append(removed, f)
		}
	}
	return removed, nil
}
