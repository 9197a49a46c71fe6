package fpm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpack/internal/adapters/fs"
	"go.trai.ch/pinpack/internal/adapters/logger"
	"go.trai.ch/pinpack/internal/adapters/shell"
	"go.trai.ch/pinpack/internal/core/ports"
)

// NodeID is the unique identifier for the fpm builder Graft node.
const NodeID graft.ID = "adapter.fpm"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.ResolverNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[*fs.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(executor, resolver, log), nil
		},
	})
}
