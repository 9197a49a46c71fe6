package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-project state directory.
	StateDirName = ".pinpack"

	// ArtifactsDirName is the name of the artifact ledger directory.
	ArtifactsDirName = "artifacts"

	// ScriptsDirName holds materialized maintainer scripts.
	ScriptsDirName = "scripts"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "pinpack.yaml"

	// DefaultVersionsFile is the buildout lock file used when none is given.
	DefaultVersionsFile = "versions.cfg"

	// VersionsSection is the INI section holding the pins.
	VersionsSection = "versions"

	// RequirementsFileName is the file written for --pin-versions.
	RequirementsFileName = "requirements.txt"

	// ObeyRequirementsFlag makes fpm read dependencies from requirements.txt.
	ObeyRequirementsFlag = "--python-obey-requirements-txt"

	// SetupScriptName is the build script of a setuptools project.
	SetupScriptName = "setup.py"

	// PyprojectFileName is the PEP 621 project file.
	PyprojectFileName = "pyproject.toml"

	// WheelDirName is the wheel output directory below the working directory.
	WheelDirName = "dist"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ScriptPerm is the permission for maintainer scripts (rwxr-xr-x).
	ScriptPerm = 0o755
)

// DefaultArtifactsPath returns the default path of the artifact ledger.
// It joins .pinpack and artifacts.
func DefaultArtifactsPath() string {
	return filepath.Join(StateDirName, ArtifactsDirName)
}

// DefaultScriptsPath returns where maintainer scripts are written.
func DefaultScriptsPath() string {
	return filepath.Join(StateDirName, ScriptsDirName)
}
