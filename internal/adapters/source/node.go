package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpack/internal/adapters/logger"
	"go.trai.ch/pinpack/internal/adapters/shell"
	"go.trai.ch/pinpack/internal/core/ports"
)

// NodeID is the unique identifier for the source extractor Graft node.
const NodeID graft.ID = "adapter.source_extractor"

func init() {
	graft.Register(graft.Node[*Extractor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Extractor, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(executor, log), nil
		},
	})
}
