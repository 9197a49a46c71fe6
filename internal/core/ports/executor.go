// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pinpack/internal/core/domain"
)

// Executor defines the interface for running external tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command and blocks until it exits.
	//
	// It returns the captured standard output. A non-zero exit is returned as an
	// error carrying the exit code and the captured standard error.
	Run(ctx context.Context, cmd domain.Command) ([]byte, error)
}
