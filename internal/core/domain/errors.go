package domain

import "go.trai.ch/zerr"

var (
	// ErrConfig is returned when the versions file cannot be read or has no [versions] section.
	// It is fatal: no package is built once it occurs.
	ErrConfig = zerr.New("invalid versions file")

	// ErrDownloadFailed is returned when the installer cannot fetch a package source tree.
	ErrDownloadFailed = zerr.New("failed to download package")

	// ErrBuildFailed is returned when the packaging tool exits with a non-zero status.
	ErrBuildFailed = zerr.New("failed to build package")

	// ErrMalformedConstraint is returned when a dpkg dependency entry cannot be parsed.
	ErrMalformedConstraint = zerr.New("malformed dependency constraint")

	// ErrTraversalLimit is returned when the dependency walk exceeds its round limit.
	ErrTraversalLimit = zerr.New("dependency traversal exceeded round limit")

	// ErrTopLevelBuildFailed is returned when the project itself cannot be packaged.
	ErrTopLevelBuildFailed = zerr.New("failed to build top-level package")

	// ErrInvalidTarget is returned for an unknown --target value.
	ErrInvalidTarget = zerr.New("invalid target, expected deb, rpm or wheel")

	// ErrSettingsReadFailed is returned when the settings file exists but cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsInvalid is returned when the settings file cannot be parsed.
	ErrSettingsInvalid = zerr.New("failed to parse settings file")

	// ErrLedgerReadFailed is returned when an artifact record cannot be read.
	ErrLedgerReadFailed = zerr.New("failed to read artifact record")

	// ErrLedgerWriteFailed is returned when an artifact record cannot be written.
	ErrLedgerWriteFailed = zerr.New("failed to write artifact record")

	// ErrArtifactNotFound is returned when a build reports success but no artifact can be located.
	ErrArtifactNotFound = zerr.New("built artifact not found")

	// ErrProjectNotFound is returned when the project directory has no setup.py or pyproject.toml.
	ErrProjectNotFound = zerr.New("no setup.py or pyproject.toml found")

	// ErrRequirementsWriteFailed is returned when requirements.txt cannot be written.
	ErrRequirementsWriteFailed = zerr.New("failed to write requirements.txt")

	// ErrCleanFailed is returned when old packages cannot be removed.
	ErrCleanFailed = zerr.New("failed to delete old packages")
)
