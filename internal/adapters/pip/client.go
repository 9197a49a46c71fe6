// Package pip drives the Python installer to fetch source trees and build wheels.
package pip

import (
	"context"
	"errors"

	"go.trai.ch/pinpack/internal/adapters/fs"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// DownloadArgs returns the installer arguments that unpack dep into destDir
// without installing it or its dependencies.
func DownloadArgs(dep domain.VersionedDependency, destDir string) []string {
	return []string{"install", "-q", dep.String(), "--ignore-installed", "--no-install", "--build=" + destDir}
}

// Client implements ports.Downloader.
type Client struct {
	executor ports.Executor
	walker   *fs.Walker
	pip      string
}

// NewClient creates a Client running the default pip binary.
func NewClient(executor ports.Executor, walker *fs.Walker) *Client {
	return &Client{
		executor: executor,
		walker:   walker,
		pip:      domain.DefaultSettings().Pip,
	}
}

// WithPip returns a copy of the client that runs bin.
func (c *Client) WithPip(bin string) *Client {
	cp := *c
	if bin != "" {
		cp.pip = bin
	}
	return &cp
}

// Download fetches dep into destDir and returns the unpacked source directory.
func (c *Client) Download(ctx context.Context, dep domain.VersionedDependency, destDir string) (string, error) {
	out, err := c.executor.Run(ctx, domain.Command{Name: c.pip, Args: DownloadArgs(dep, destDir)})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		wrapped := zerr.Wrap(errors.Join(domain.ErrDownloadFailed, err), "pip could not fetch package")
		wrapped = zerr.With(wrapped, "package", dep.String())
		return "", zerr.With(wrapped, "output", string(out))
	}

	dir, err := c.walker.FindSourceTree(destDir, dep.Name)
	if err != nil {
		wrapped := zerr.Wrap(errors.Join(domain.ErrDownloadFailed, err), "no source tree after download")
		return "", zerr.With(wrapped, "package", dep.String())
	}
	return dir, nil
}
