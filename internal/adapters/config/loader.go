// Package config provides the settings loader for pinpack.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new settings loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the settings file at path and overlays it on the defaults.
// A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no settings file at " + path + ", using defaults")
			return settings, nil
		}
		return settings, zerr.With(
			zerr.Wrap(errors.Join(domain.ErrSettingsReadFailed, err), "failed to read settings"),
			"path", path,
		)
	}

	var file Pinfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, zerr.With(
			zerr.Wrap(errors.Join(domain.ErrSettingsInvalid, err), "failed to parse settings"),
			"path", path,
		)
	}

	return apply(settings, &file, path)
}

func apply(s domain.Settings, f *Pinfile, path string) (domain.Settings, error) {
	overlay(&s.Maintainer, f.Maintainer)
	overlay(&s.PythonBin, f.PythonBin)
	overlay(&s.PythonInstallLib, f.PythonInstallLib)
	overlay(&s.PythonInstallBin, f.PythonInstallBin)
	overlay(&s.BeforeRemove, f.BeforeRemove)
	overlay(&s.FPM, f.FPM)
	overlay(&s.Pip, f.Pip)
	overlay(&s.Python, f.Python)

	if f.Target != "" {
		target, err := domain.ParseTarget(f.Target)
		if err != nil {
			return s, zerr.With(zerr.Wrap(errors.Join(domain.ErrSettingsInvalid, err), "invalid target"), "path", path)
		}
		s.Target = target
	}

	for i, e := range f.NameExceptions {
		if e.Source == "" || e.Native == "" {
			err := zerr.With(zerr.Wrap(domain.ErrSettingsInvalid, "name exception needs source and native"), "index", i)
			return s, zerr.With(err, "path", path)
		}
		s.NameExceptions = append(s.NameExceptions, domain.NameException{Source: e.Source, NativeBase: e.Native})
	}

	return s, nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
