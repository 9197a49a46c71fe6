package ports

import (
	"context"

	"go.trai.ch/pinpack/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks

// Downloader fetches an unbuilt source tree.
type Downloader interface {
	// Download fetches dep into destDir without resolving its dependencies.
	// It returns the directory holding the unpacked source.
	Download(ctx context.Context, dep domain.VersionedDependency, destDir string) (string, error)
}

// PackageBuilder turns a source tree into an artifact.
type PackageBuilder interface {
	// Build runs the packaging tool and returns the path of the produced artifact.
	Build(ctx context.Context, req domain.BuildRequest) (string, error)
}
