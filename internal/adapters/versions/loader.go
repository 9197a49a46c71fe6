// Package versions reads buildout version pins from an INI file.
package versions

import (
	"errors"

	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/ini.v1"
)

// Loader implements ports.PinLoader for buildout versions files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the [versions] section of the file at path.
func (l *Loader) Load(path string) (domain.PinTable, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:              true,
		SpaceBeforeInlineComment: true,
	}, path)
	if err != nil {
		return domain.PinTable{}, zerr.With(
			zerr.Wrap(errors.Join(domain.ErrConfig, err), "failed to load versions file"),
			"path", path,
		)
	}

	section, err := cfg.GetSection(domain.VersionsSection)
	if err != nil {
		return domain.PinTable{}, zerr.With(
			zerr.Wrap(domain.ErrConfig, "missing [versions] section"),
			"path", path,
		)
	}

	return domain.NewPinTable(section.KeysHash()), nil
}

// LookupVersions loads path and resolves names against its pins.
// Names without a pin map to "".
func (l *Loader) LookupVersions(names []string, path string) (domain.Frontier, error) {
	pins, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	return pins.Lookup(names), nil
}
