// Package fs provides file system adapters for locating, hashing and removing artifacts.
package fs

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker locates unpacked source trees.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// SourceTrees yields the direct subdirectories of root that hold a Python build
// script, skipping hidden directories.
func (w *Walker) SourceTrees(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		entries, err := os.ReadDir(root)
		if err != nil {
			return
		}
		for _, e := range entries {
			if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			dir := filepath.Join(root, e.Name())
			if !IsProject(dir) {
				continue
			}
			if !yield(dir) {
				return
			}
		}
	}
}

// FindSourceTree returns the source tree of package name below root.
// A directory named after the package wins, ignoring case; otherwise root must
// hold exactly one source tree.
func (w *Walker) FindSourceTree(root, name string) (string, error) {
	var trees []string
	for dir := range w.SourceTrees(root) {
		if strings.EqualFold(filepath.Base(dir), name) {
			return dir, nil
		}
		trees = append(trees, dir)
	}

	if len(trees) == 1 {
		return trees[0], nil
	}
	return "", zerr.With(zerr.With(zerr.New("source tree not found"), "package", name), "candidates", len(trees))
}

// IsProject reports whether dir holds a setup.py or a pyproject.toml.
func IsProject(dir string) bool {
	for _, name := range []string{domain.SetupScriptName, domain.PyprojectFileName} {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}
