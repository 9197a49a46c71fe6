// Package fpm builds native packages with the fpm packaging tool.
package fpm

import (
	"context"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/pinpack/internal/adapters/fs"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/pinpack/internal/engine/naming"
	"go.trai.ch/zerr"
)

//go:embed preremove.sh
var defaultPreremove []byte

// PreremoveName is the file name of the materialized default script.
const PreremoveName = "preremove"

// fpm reports the artifact as a ruby hash: {... :path=>"python-six_1.10.0_all.deb"}
var createdPath = regexp.MustCompile(`:path=>"([^"]+)"`)

// Builder implements ports.PackageBuilder for the deb and rpm targets.
type Builder struct {
	executor   ports.Executor
	resolver   *fs.Resolver
	logger     ports.Logger
	settings   domain.Settings
	translator *naming.Translator
	scriptsDir string
}

// NewBuilder creates a Builder with default settings and name exceptions.
func NewBuilder(executor ports.Executor, resolver *fs.Resolver, logger ports.Logger) *Builder {
	return &Builder{
		executor:   executor,
		resolver:   resolver,
		logger:     logger,
		settings:   domain.DefaultSettings(),
		translator: naming.New(),
		scriptsDir: domain.DefaultScriptsPath(),
	}
}

// Configure returns a copy of the builder using settings and translator.
func (b *Builder) Configure(settings domain.Settings, translator *naming.Translator) *Builder {
	c := *b
	c.settings = settings
	c.translator = translator
	return &c
}

// WithScriptsDir returns a copy of the builder that writes the default
// preremove script below dir.
func (b *Builder) WithScriptsDir(dir string) *Builder {
	c := *b
	c.scriptsDir = dir
	return &c
}

// Build runs fpm in req.OutputDir and returns the path of the package it created.
func (b *Builder) Build(ctx context.Context, req domain.BuildRequest) (string, error) {
	preremove, err := b.preremove()
	if err != nil {
		return "", err
	}

	outDir, err := filepath.Abs(req.OutputDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve output directory")
	}
	if err := os.MkdirAll(outDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create output directory"), "dir", outDir)
	}

	argv := Command(req, b.settings, b.translator, preremove)
	out, err := b.executor.Run(ctx, domain.Command{Name: argv[0], Args: argv[1:], Dir: outDir})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		wrapped := zerr.Wrap(errors.Join(domain.ErrBuildFailed, err), "fpm failed")
		wrapped = zerr.With(wrapped, "package", req.Name)
		return "", zerr.With(wrapped, "output", string(out))
	}

	return b.locate(out, outDir, req)
}

func (b *Builder) locate(out []byte, outDir string, req domain.BuildRequest) (string, error) {
	if m := createdPath.FindSubmatch(out); m != nil {
		path := string(m[1])
		if !filepath.IsAbs(path) {
			path = filepath.Join(outDir, path)
		}
		return path, nil
	}

	b.logger.Debug("fpm reported no path for " + req.Name + ", searching " + outDir)
	target := req.Target
	if !target.IsNative() {
		target = domain.TargetDeb
	}

	path, err := b.resolver.Newest(outDir, target.ArtifactGlob(b.translator.ToNativeName(req.Name), req.Name, req.FullVersion()))
	if err == nil && path == "" {
		path, err = b.resolver.Newest(outDir, "*"+target.Extension())
	}
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "fpm wrote no package"), "package", req.Name)
	}
	return path, nil
}

// preremove returns the configured script, writing the embedded default when none is set.
func (b *Builder) preremove() (string, error) {
	if b.settings.BeforeRemove != "" {
		return b.settings.BeforeRemove, nil
	}

	dir, err := filepath.Abs(b.scriptsDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve scripts directory")
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create scripts directory"), "dir", dir)
	}

	path := filepath.Join(dir, PreremoveName)
	//nolint:gosec // maintainer scripts must be executable
	if err := os.WriteFile(path, defaultPreremove, domain.ScriptPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write preremove script"), "path", path)
	}
	return path, nil
}
