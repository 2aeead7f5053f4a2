package yaegi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/handler/internal/core/ports"
)

// NodeID is the unique identifier for the module loader Graft node.
const NodeID graft.ID = "adapter.yaegi"

func init() {
	graft.Register(graft.Node[ports.ModuleLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleLoader, error) {
			return New(nil, nil), nil
		},
	})
}
