package pip

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/pinpack/internal/adapters/fs"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// WheelArgs returns the installer arguments that build the project in the
// working directory into wheelDir.
func WheelArgs(wheelDir string) []string {
	return []string{"wheel", ".", "--no-deps", "--wheel-dir", wheelDir}
}

// WheelBuilder implements ports.PackageBuilder for the wheel target.
type WheelBuilder struct {
	executor ports.Executor
	resolver *fs.Resolver
	pip      string
}

// NewWheelBuilder creates a WheelBuilder running the default pip binary.
func NewWheelBuilder(executor ports.Executor, resolver *fs.Resolver) *WheelBuilder {
	return &WheelBuilder{
		executor: executor,
		resolver: resolver,
		pip:      domain.DefaultSettings().Pip,
	}
}

// WithPip returns a copy of the builder that runs bin.
func (b *WheelBuilder) WithPip(bin string) *WheelBuilder {
	cp := *b
	if bin != "" {
		cp.pip = bin
	}
	return &cp
}

// Build runs "pip wheel" in req.Path and returns the wheel written to req.OutputDir.
// req.Path may point at the build script; its directory is used.
func (b *WheelBuilder) Build(ctx context.Context, req domain.BuildRequest) (string, error) {
	srcDir := req.Path
	if info, err := os.Stat(srcDir); err == nil && !info.IsDir() {
		srcDir = filepath.Dir(srcDir)
	}

	wheelDir, err := filepath.Abs(req.OutputDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve wheel directory")
	}
	if err := os.MkdirAll(wheelDir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create wheel directory"), "dir", wheelDir)
	}

	out, err := b.executor.Run(ctx, domain.Command{Name: b.pip, Args: WheelArgs(wheelDir), Dir: srcDir})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		wrapped := zerr.Wrap(errors.Join(domain.ErrBuildFailed, err), "pip wheel failed")
		wrapped = zerr.With(wrapped, "package", req.Name)
		return "", zerr.With(wrapped, "output", string(out))
	}

	path, err := b.resolver.Newest(wheelDir, domain.TargetWheel.ArtifactGlob("", req.Name, req.Version))
	if err == nil && path == "" {
		path, err = b.resolver.Newest(wheelDir, "*"+domain.TargetWheel.Extension())
	}
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrArtifactNotFound, "pip wheel wrote no wheel"), "package", req.Name)
	}
	return path, nil
}
