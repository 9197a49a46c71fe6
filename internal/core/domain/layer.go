package domain

// DependencyState is the lifecycle position of one dependency within a traversal layer.
type DependencyState string

const (
	// StateSeeded indicates the dependency was handed to the layer.
	StateSeeded DependencyState = "seeded"
	// StateVersionResolved indicates the pin lookup completed.
	StateVersionResolved DependencyState = "version_resolved"
	// StateSkipped indicates an artifact for this name and version already existed.
	StateSkipped DependencyState = "skipped"
	// StateFiltered indicates the dependency was excluded by the include/exclude filter.
	StateFiltered DependencyState = "filtered"
	// StateDownloaded indicates the source tree was fetched.
	StateDownloaded DependencyState = "downloaded"
	// StateBuilt indicates the artifact was produced.
	StateBuilt DependencyState = "built"
	// StateDownloadFailed indicates the installer failed; the branch is pruned.
	StateDownloadFailed DependencyState = "download_failed"
	// StateBuildFailed indicates the packaging tool failed; the branch is pruned.
	StateBuildFailed DependencyState = "build_failed"
	// StateDependenciesExtracted indicates the dependency's own dependencies were read.
	StateDependenciesExtracted DependencyState = "dependencies_extracted"
)

// IsFailure reports whether the state prunes the dependency's sub-tree.
func (s DependencyState) IsFailure() bool {
	return s == StateDownloadFailed || s == StateBuildFailed
}

// Layer is the outcome of processing one frontier.
type Layer struct {
	// Packaged holds every dependency that was built or already present.
	Packaged Frontier
	// Failed holds the error of every pruned dependency.
	Failed map[string]error
	// States records where each dependency of the frontier ended up.
	States map[string]DependencyState
	// Next is the frontier discovered by this layer.
	Next Frontier
}

// NewLayer returns an empty layer ready to be filled.
func NewLayer() *Layer {
	return &Layer{
		Packaged: make(Frontier),
		Failed:   make(map[string]error),
		States:   make(map[string]DependencyState),
		Next:     make(Frontier),
	}
}
