package ports

import "go.trai.ch/pinpack/internal/core/domain"

// PinLoader defines the interface for reading a buildout versions file.
//
//go:generate go run go.uber.org/mock/mockgen -source=pins.go -destination=mocks/mock_pins.go -package=mocks
type PinLoader interface {
	// Load parses the versions file at path.
	// It returns domain.ErrConfig if the file is unreadable or lacks a [versions] section.
	Load(path string) (domain.PinTable, error)
}
