package domain

import (
	"maps"
	"slices"
	"strings"
)

// VersionedDependency is a package name with an optional pinned version.
// An empty Version means the package is built unpinned.
type VersionedDependency struct {
	Name    string
	Version string
}

// Pinned reports whether the dependency carries an exact version.
func (d VersionedDependency) Pinned() bool {
	return d.Version != ""
}

// String renders the dependency in requirements.txt form.
func (d VersionedDependency) String() string {
	if d.Version == "" {
		return d.Name
	}
	return d.Name + "==" + d.Version
}

// Frontier maps dependency names to versions that are discovered but not yet processed.
// A nil Frontier signals that traversal is over; an empty one means a layer found nothing new.
type Frontier map[string]string

// Names returns the frontier's names in a stable order.
func (f Frontier) Names() []string {
	return slices.Sorted(maps.Keys(f))
}

// Dependencies returns the frontier as a sorted list.
func (f Frontier) Dependencies() []VersionedDependency {
	deps := make([]VersionedDependency, 0, len(f))
	for _, name := range f.Names() {
		deps = append(deps, VersionedDependency{Name: name, Version: f[name]})
	}
	return deps
}

// ResolvedSet accumulates every dependency packaged during a traversal.
type ResolvedSet map[string]string

// Merge copies src into the set. A name seen again takes the newer version.
func (r ResolvedSet) Merge(src map[string]string) {
	maps.Copy(r, src)
}

// Requirements renders the set as sorted requirements.txt lines.
func (r ResolvedSet) Requirements() []string {
	lines := make([]string, 0, len(r))
	for _, name := range slices.Sorted(maps.Keys(r)) {
		lines = append(lines, VersionedDependency{Name: name, Version: r[name]}.String())
	}
	return lines
}

// Filter decides which dependency names are packaged.
// Exclude always wins; a non-empty Include restricts packaging to the listed names.
type Filter struct {
	Include []string
	Exclude []string
}

// Allows reports whether name passes the filter. Matching ignores case.
func (f Filter) Allows(name string) bool {
	if containsFold(f.Exclude, name) {
		return false
	}
	if len(f.Include) == 0 {
		return true
	}
	return containsFold(f.Include, name)
}

func containsFold(list []string, name string) bool {
	return slices.ContainsFunc(list, func(s string) bool {
		return strings.EqualFold(s, name)
	})
}
