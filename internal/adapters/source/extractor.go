// Package source reads the declared dependencies of an unbuilt Python project.
package source

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/pinpack/internal/engine/naming"
	"go.trai.ch/zerr"
)

//go:embed capture_requires.py
var captureScript string

// Extractor implements ports.DependencyExtractor for source trees.
type Extractor struct {
	executor ports.Executor
	logger   ports.Logger
	python   string
}

// NewExtractor creates an Extractor that evaluates setup.py with the default interpreter.
func NewExtractor(executor ports.Executor, logger ports.Logger) *Extractor {
	return &Extractor{
		executor: executor,
		logger:   logger,
		python:   domain.DefaultSettings().Python,
	}
}

// WithPython returns a copy of the extractor that runs setup.py with bin.
func (e *Extractor) WithPython(bin string) *Extractor {
	c := *e
	if bin != "" {
		c.python = bin
	}
	return &c
}

// Extract returns the bare names the project at path declares.
// path is a project directory, its setup.py or its pyproject.toml.
// Failures are logged and reported as zero dependencies.
func (e *Extractor) Extract(ctx context.Context, path string) ([]string, error) {
	requirements, err := e.requirements(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.logger.Warn("could not read dependencies of " + path + ": " + err.Error())
		return []string{}, nil
	}
	return naming.StripSpecifiers(requirements), nil
}

func (e *Extractor) requirements(ctx context.Context, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to stat project")
	}

	if !info.IsDir() {
		if filepath.Base(path) == domain.PyprojectFileName {
			reqs, _, err := readPyproject(path)
			return reqs, err
		}
		return e.evalSetup(ctx, path)
	}

	reqs, declared, err := readPyproject(filepath.Join(path, domain.PyprojectFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if declared {
		return reqs, nil
	}

	setup := filepath.Join(path, domain.SetupScriptName)
	if _, err := os.Stat(setup); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrProjectNotFound, "no build script"), "dir", path)
	}
	return e.evalSetup(ctx, setup)
}

type pyprojectFile struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
		Dynamic      []string `toml:"dynamic"`
	} `toml:"project"`
}

// readPyproject reports whether the file settles the dependency list statically.
// A [project] table that marks dependencies as dynamic defers to setup.py.
func readPyproject(path string) ([]string, bool, error) {
	var doc pyprojectFile
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, "failed to parse pyproject.toml"), "path", path)
	}
	if !meta.IsDefined("project") || slices.Contains(doc.Project.Dynamic, "dependencies") {
		return nil, false, nil
	}
	if doc.Project.Dependencies == nil {
		return []string{}, true, nil
	}
	return doc.Project.Dependencies, true, nil
}

func (e *Extractor) evalSetup(ctx context.Context, setupPath string) ([]string, error) {
	abs, err := filepath.Abs(setupPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve setup.py")
	}

	out, err := e.executor.Run(ctx, domain.Command{
		Name: e.python,
		Args: []string{"-c", captureScript, abs},
		Dir:  filepath.Dir(abs),
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to evaluate setup.py")
	}

	var requires []string
	if err := json.Unmarshal(out, &requires); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "unexpected setup.py output"), "output", string(out))
	}
	return requires, nil
}
