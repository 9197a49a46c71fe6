package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpack/internal/adapters/fs"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/core/ports"
)

// NodeID is the unique identifier for the artifact ledger Graft node.
const NodeID graft.ID = "adapter.artifact_ledger"

func init() {
	graft.Register(graft.Node[ports.ArtifactLedger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ArtifactLedger, error) {
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(domain.DefaultArtifactsPath(), hasher), nil
		},
	})
}
