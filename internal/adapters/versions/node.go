package versions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinpack/internal/core/ports"
)

// NodeID is the unique identifier for the versions loader Graft node.
const NodeID graft.ID = "adapter.pin_loader"

func init() {
	graft.Register(graft.Node[ports.PinLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PinLoader, error) {
			return NewLoader(), nil
		},
	})
}
