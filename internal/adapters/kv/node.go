package kv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/handler/internal/core/ports"
)

// NodeID is the unique identifier for the key/value opener Graft node.
const NodeID graft.ID = "adapter.kv"

func init() {
	graft.Register(graft.Node[ports.KeyValueOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KeyValueOpener, error) {
			return NewOpener(), nil
		},
	})
}
