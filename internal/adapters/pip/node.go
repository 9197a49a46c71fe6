package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpack/internal/adapters/fs"
	"go.trai.ch/pinpack/internal/adapters/shell"
	"go.trai.ch/pinpack/internal/core/ports"
)

const (
	// ClientNodeID is the unique identifier for the pip download client node.
	ClientNodeID graft.ID = "adapter.pip.client"
	// WheelNodeID is the unique identifier for the wheel builder node.
	WheelNodeID graft.ID = "adapter.pip.wheel"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (*Client, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(executor, walker), nil
		},
	})

	graft.Register(graft.Node[*WheelBuilder]{
		ID:        WheelNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.ResolverNodeID},
		Run: func(ctx context.Context) (*WheelBuilder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[*fs.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewWheelBuilder(executor, resolver), nil
		},
	})
}
