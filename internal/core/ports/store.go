package ports

import "go.trai.ch/pinpack/internal/core/domain"

// ArtifactLedger defines the interface for remembering built artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactLedger interface {
	// Lookup returns the artifact recorded for key.
	// Returns nil, nil if nothing is recorded or the file no longer matches its fingerprint.
	Lookup(key domain.ArtifactKey) (*domain.Artifact, error)

	// Record fingerprints the file at path and stores it under key.
	Record(key domain.ArtifactKey, path string) (domain.Artifact, error)
}
