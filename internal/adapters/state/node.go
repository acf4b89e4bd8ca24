package state

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the state store opener Graft node.
const NodeID graft.ID = "adapter.state"

func init() {
	graft.Register(graft.Node[*Opener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Opener, error) {
			return NewOpener(), nil
		},
	})
}
