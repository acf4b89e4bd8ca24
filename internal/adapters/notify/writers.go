package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Notifier = (*LogNotifier)(nil)
	_ ports.Notifier = (*JSONNotifier)(nil)
	_ ports.Notifier = Multi(nil)
)

// LogNotifier reports events through the logger.
type LogNotifier struct {
	logger ports.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger ports.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs event. Restore-needed events are warnings listing the actions.
func (n *LogNotifier) Notify(_ context.Context, event domain.Event) {
	switch event.Kind {
	case domain.EventRestoreNeeded:
		parts := make([]string, 0, len(event.Actions))
		for _, a := range event.Actions {
			parts = append(parts, a.Action+" "+a.Package)
		}
		n.logger.Warn(fmt.Sprintf("lockfile changes need manual resolution: %s", strings.Join(parts, ", ")))
	default:
		n.logger.Info(string(event.Kind))
	}
}

// JSONNotifier writes one JSON document per event.
type JSONNotifier struct {
	mu     sync.Mutex
	enc    *json.Encoder
	logger ports.Logger
}

// NewJSONNotifier creates a JSONNotifier writing to w.
func NewJSONNotifier(w io.Writer, logger ports.Logger) *JSONNotifier {
	return &JSONNotifier{enc: json.NewEncoder(w), logger: logger}
}

// Notify encodes event. Write errors are logged.
func (n *JSONNotifier) Notify(_ context.Context, event domain.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.enc.Encode(event); err != nil {
		n.logger.Error(zerr.Wrap(err, "failed to write event"))
	}
}

// Multi forwards events to every notifier in order.
type Multi []ports.Notifier

// Notify implements ports.Notifier.
func (m Multi) Notify(ctx context.Context, event domain.Event) {
	for _, n := range m {
		n.Notify(ctx, event)
	}
}
