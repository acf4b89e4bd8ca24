package ports

import (
	"context"

	"go.trai.ch/libsync/internal/core/domain"
)

// Notifier delivers fire-and-forget events to observers.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Notify emits event. It must not block on slow observers.
	Notify(ctx context.Context, event domain.Event)
}
