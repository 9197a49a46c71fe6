package ports

import "go.trai.ch/pinpack/internal/core/domain"

// SettingsLoader defines the interface for loading packaging settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file at path, falling back to defaults when it does not exist.
	Load(path string) (domain.Settings, error)
}
