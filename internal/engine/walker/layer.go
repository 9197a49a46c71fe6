// Package walker packages a dependency graph one frontier at a time.
package walker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/pinpack/internal/engine/naming"
	"go.trai.ch/zerr"
)

// ArtifactFinder locates files already present in an output directory.
type ArtifactFinder interface {
	// Newest returns the most recent file in dir matching pattern, or "" if none does.
	Newest(dir, pattern string) (string, error)
}

// Deps are the collaborators a LayerBuilder drives.
type Deps struct {
	Downloader ports.Downloader
	Builder    ports.PackageBuilder
	// Sources reads the dependencies a freshly downloaded source tree declares.
	Sources ports.DependencyExtractor
	// Extractor reads dependencies from an artifact that already exists.
	Extractor ports.DependencyExtractor
	Ledger    ports.ArtifactLedger
	Finder    ArtifactFinder
	Telemetry ports.Telemetry
	Logger    ports.Logger
}

// Config holds the per-build parameters of a LayerBuilder.
type Config struct {
	Pins       domain.PinTable
	Translator *naming.Translator
	Filter     domain.Filter
	Target     domain.Target
	// OutputDir is where artifacts are written and searched for.
	OutputDir string
	// WorkDir is the parent of the temporary download directories; empty uses the system default.
	WorkDir string
}

// LayerBuilder packages every dependency of one frontier and discovers the next.
type LayerBuilder struct {
	deps Deps
	cfg  Config
	// ledgerDir is the absolute OutputDir, part of every ledger key.
	ledgerDir string
}

// NewLayerBuilder creates a LayerBuilder.
func NewLayerBuilder(deps Deps, cfg Config) *LayerBuilder {
	if cfg.Translator == nil {
		cfg.Translator = naming.New()
	}
	if cfg.Target == "" {
		cfg.Target = domain.TargetDeb
	}
	ledgerDir, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		ledgerDir = filepath.Clean(cfg.OutputDir)
	}
	return &LayerBuilder{deps: deps, cfg: cfg, ledgerDir: ledgerDir}
}

// Build packages deps in name order and returns the resulting layer.
// It returns nil when deps is empty. A dependency that fails to download or
// build is recorded in Layer.Failed and contributes nothing to Layer.Next.
func (b *LayerBuilder) Build(ctx context.Context, deps domain.Frontier) (*domain.Layer, error) {
	if len(deps) == 0 {
		return nil, nil
	}

	layer := domain.NewLayer()
	for _, dep := range deps.Dependencies() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		layer.States[dep.Name] = domain.StateSeeded
		if !dep.Pinned() {
			b.deps.Logger.Debug("no pin for " + dep.Name + ", building latest")
		}
		layer.States[dep.Name] = domain.StateVersionResolved

		if !b.cfg.Filter.Allows(dep.Name) {
			layer.States[dep.Name] = domain.StateFiltered
			b.deps.Logger.Debug("skipping filtered dependency " + dep.Name)
			continue
		}

		vctx, vertex := b.deps.Telemetry.Record(ctx, dep.String())
		names, err := b.process(vctx, vertex, dep, layer)
		if err != nil {
			if ctx.Err() != nil {
				vertex.Complete(ctx.Err())
				return nil, ctx.Err()
			}
			layer.Failed[dep.Name] = err
			b.deps.Logger.Error(err)
			vertex.Complete(err)
			continue
		}
		vertex.Complete(nil)

		layer.Packaged[dep.Name] = dep.Version
		for name, version := range b.cfg.Pins.Lookup(names) {
			layer.Next[name] = version
		}
	}

	return layer, nil
}

// process packages dep unless an artifact exists and returns its dependency names.
// A reused artifact is asked for the dependencies it records; a fresh build
// reads them from the downloaded source tree.
func (b *LayerBuilder) process(
	ctx context.Context,
	vertex ports.Vertex,
	dep domain.VersionedDependency,
	layer *domain.Layer,
) ([]string, error) {
	if path := b.existing(dep); path != "" {
		layer.States[dep.Name] = domain.StateSkipped
		vertex.Cached()
		_, _ = fmt.Fprintf(vertex.Stdout(), "using existing %s\n", path)
		return b.deps.Extractor.Extract(ctx, path)
	}

	path, names, err := b.build(ctx, dep, layer)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(vertex.Stdout(), "built %s\n", path)
	layer.States[dep.Name] = domain.StateDependenciesExtracted
	return names, nil
}

// existing returns the path of an artifact already built for dep, or "".
func (b *LayerBuilder) existing(dep domain.VersionedDependency) string {
	artifact, err := b.deps.Ledger.Lookup(b.key(dep))
	if err != nil {
		b.deps.Logger.Warn(fmt.Sprintf("ignoring artifact record of %s: %v", dep.Name, err))
	}
	if artifact != nil {
		return artifact.Path
	}

	pattern := b.cfg.Target.ArtifactGlob(b.cfg.Translator.ToNativeName(dep.Name), dep.Name, dep.Version)
	path, err := b.deps.Finder.Newest(b.cfg.OutputDir, pattern)
	if err != nil {
		b.deps.Logger.Warn(fmt.Sprintf("cannot search %s for %s: %v", b.cfg.OutputDir, pattern, err))
		return ""
	}
	return path
}

// build downloads dep, reads its declared dependencies and packages it.
// Native packages get one -d constraint per declared dependency, so the
// artifact records them even though fpm's own detection is off.
func (b *LayerBuilder) build(
	ctx context.Context,
	dep domain.VersionedDependency,
	layer *domain.Layer,
) (string, []string, error) {
	tmp, err := os.MkdirTemp(b.cfg.WorkDir, "pinpack-")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to create download directory")
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	srcDir, err := b.deps.Downloader.Download(ctx, dep, tmp)
	if err != nil {
		layer.States[dep.Name] = domain.StateDownloadFailed
		return "", nil, err
	}
	layer.States[dep.Name] = domain.StateDownloaded

	names, err := b.deps.Sources.Extract(ctx, srcDir)
	if err != nil {
		return "", nil, err
	}

	req := domain.BuildRequest{
		Name:                 dep.Name,
		Path:                 srcDir,
		Version:              dep.Version,
		Target:               b.cfg.Target,
		NoPythonDependencies: true,
		OutputDir:            b.cfg.OutputDir,
	}
	if declared := b.cfg.Pins.Lookup(names); len(declared) > 0 && b.cfg.Target.IsNative() {
		req.ExtraArgs = b.cfg.Translator.ExtendExtraArgs(nil, declared)
	}

	path, err := b.deps.Builder.Build(ctx, req)
	if err != nil {
		layer.States[dep.Name] = domain.StateBuildFailed
		return "", nil, err
	}
	layer.States[dep.Name] = domain.StateBuilt

	if _, err := b.deps.Ledger.Record(b.key(dep), path); err != nil {
		b.deps.Logger.Warn(fmt.Sprintf("cannot record artifact of %s: %v", dep.Name, err))
	}
	return path, names, nil
}

func (b *LayerBuilder) key(dep domain.VersionedDependency) domain.ArtifactKey {
	return domain.ArtifactKey{Name: dep.Name, Version: dep.Version, Target: b.cfg.Target, OutputDir: b.ledgerDir}
}
