package idgen

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/handler/internal/core/ports"
)

// NodeID is the unique identifier for the id generator Graft node.
const NodeID graft.ID = "adapter.idgen"

func init() {
	graft.Register(graft.Node[ports.IDGenerator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IDGenerator, error) {
			return NewUUID(), nil
		},
	})
}
