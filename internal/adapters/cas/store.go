// Package cas implements the artifact ledger backed by one JSON record per artifact.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ArtifactLedger using a file-per-artifact strategy.
type Store struct {
	dir    string
	hasher Hasher
	mu     sync.Mutex
	now    func() time.Time
}

// Hasher fingerprints artifact files.
type Hasher interface {
	Fingerprint(path string) (string, error)
}

// NewStore creates a ledger rooted at dir.
func NewStore(dir string, hasher Hasher) *Store {
	return &Store{
		dir:    filepath.Clean(dir),
		hasher: hasher,
		now:    time.Now,
	}
}

// Lookup retrieves the artifact recorded for key.
// A record for another key, or whose file is gone or no longer matches its
// fingerprint, is treated as absent.
func (s *Store) Lookup(key domain.ArtifactKey) (*domain.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrLedgerReadFailed, err), "failed to read record"), "key", key.String())
	}

	var artifact domain.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrLedgerReadFailed, err), "failed to decode record"), "key", key.String())
	}

	if artifact.Key() != key {
		return nil, nil
	}

	sum, err := s.hasher.Fingerprint(artifact.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrLedgerReadFailed, err), "failed to fingerprint artifact"), "path", artifact.Path)
	}
	if sum != artifact.Fingerprint {
		return nil, nil
	}

	return &artifact, nil
}

// Record fingerprints the file at path and stores it under key.
func (s *Store) Record(key domain.ArtifactKey, path string) (domain.Artifact, error) {
	sum, err := s.hasher.Fingerprint(path)
	if err != nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrLedgerWriteFailed, err), "failed to fingerprint artifact"), "path", path)
	}

	artifact := domain.Artifact{
		Name:        key.Name,
		Version:     key.Version,
		Target:      key.Target,
		OutputDir:   key.OutputDir,
		Path:        path,
		Fingerprint: sum,
		BuildID:     uuid.NewString(),
		BuiltAt:     s.now().UTC(),
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return domain.Artifact{}, zerr.Wrap(errors.Join(domain.ErrLedgerWriteFailed, err), "failed to encode record")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrLedgerWriteFailed, err), "failed to create ledger directory"), "dir", s.dir)
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(s.filename(key), data, domain.FilePerm); err != nil {
		return domain.Artifact{}, zerr.With(zerr.Wrap(errors.Join(domain.ErrLedgerWriteFailed, err), "failed to write record"), "key", key.String())
	}

	return artifact, nil
}

func (s *Store) filename(key domain.ArtifactKey) string {
	hash := sha256.Sum256([]byte(key.String()))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}
