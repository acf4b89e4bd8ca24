package notify

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the notification hub Graft node.
const NodeID graft.ID = "adapter.notify"

func init() {
	graft.Register(graft.Node[*Hub]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hub, error) {
			return NewHub(), nil
		},
	})
}
