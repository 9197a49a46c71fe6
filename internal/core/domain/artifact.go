package domain

import "time"

// ArtifactKey identifies one built artifact.
type ArtifactKey struct {
	Name    string
	Version string
	Target  Target
	// OutputDir is the absolute directory the artifact was built into.
	OutputDir string
}

// String returns the key in target/name/version@dir form.
func (k ArtifactKey) String() string {
	return string(k.Target) + "/" + k.Name + "/" + k.Version + "@" + k.OutputDir
}

// Artifact records a package file produced by a build.
type Artifact struct {
	Name        string    `json:"name,omitzero"`
	Version     string    `json:"version,omitzero"`
	Target      Target    `json:"target,omitzero"`
	OutputDir   string    `json:"output_dir,omitzero"`
	Path        string    `json:"path,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	BuildID     string    `json:"build_id,omitzero"`
	BuiltAt     time.Time `json:"built_at,omitzero"`
}

// Key returns the ledger key of the artifact.
func (a Artifact) Key() ArtifactKey {
	return ArtifactKey{Name: a.Name, Version: a.Version, Target: a.Target, OutputDir: a.OutputDir}
}

// BuildRequest describes one invocation of the packaging tool.
type BuildRequest struct {
	// Name is the source package name.
	Name string
	// Path is the setup.py or source directory handed to the tool.
	Path string
	// Version overrides the version read from the project.
	Version string
	// Iteration is appended to Version as "<version>.<iteration>".
	Iteration string
	Target    Target
	// NoPythonDependencies stops fpm from deriving dependencies on its own.
	NoPythonDependencies bool
	ExtraArgs            []string
	// OutputDir is where the artifact is written.
	OutputDir string
}

// FullVersion returns Version with the iteration suffix applied.
func (r BuildRequest) FullVersion() string {
	if r.Version == "" || r.Iteration == "" {
		return r.Version
	}
	return r.Version + "." + r.Iteration
}
