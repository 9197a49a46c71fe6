package domain

import "strings"

// PinTable holds the exact versions pinned by a versions file.
// Keys are stored lower-cased; the table is read-only once built.
type PinTable struct {
	versions map[string]string
}

// NewPinTable builds a table from name/version pairs as they appear in the file.
func NewPinTable(entries map[string]string) PinTable {
	versions := make(map[string]string, len(entries))
	for name, version := range entries {
		versions[strings.ToLower(name)] = strings.TrimSpace(version)
	}
	return PinTable{versions: versions}
}

// Version returns the pinned version for name, ignoring case.
func (p PinTable) Version(name string) (string, bool) {
	v, ok := p.versions[strings.ToLower(name)]
	return v, ok
}

// Lookup resolves every name to its pin. Unpinned names map to "".
// The result is keyed by the names exactly as given.
func (p PinTable) Lookup(names []string) Frontier {
	out := make(Frontier, len(names))
	for _, name := range names {
		v, _ := p.Version(name)
		out[name] = v
	}
	return out
}

// Len returns the number of pins.
func (p PinTable) Len() int {
	return len(p.versions)
}
