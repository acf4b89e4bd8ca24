package packrat

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libsync/internal/adapters/logger"
	"go.trai.ch/libsync/internal/adapters/shell"
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
)

// NodeID is the unique identifier for the package manager factory Graft node.
const NodeID graft.ID = "adapter.packrat"

// Factory builds a Manager once the project configuration is known.
type Factory func(cfg *domain.Config) ports.PackageManager

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (Factory, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(cfg *domain.Config) ports.PackageManager {
				return NewManager(runner, log, cfg)
			}, nil
		},
	})
}
