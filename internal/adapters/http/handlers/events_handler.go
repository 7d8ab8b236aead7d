package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/initiative-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

const defaultHeartbeat = 15 * time.Second

// NotificationSource hands out notification subscriptions. The returned
// cancel func releases the subscription and must be safe to call twice.
type NotificationSource interface {
	Subscribe() (<-chan ports.Notification, func())
}

// EventsHandler streams presenter notifications as Server-Sent Events.
type EventsHandler struct {
	source    NotificationSource
	heartbeat time.Duration
}

// EventsOption configures an EventsHandler.
type EventsOption func(*EventsHandler)

// WithHeartbeat sets how often an idle stream gets a keep-alive comment.
func WithHeartbeat(d time.Duration) EventsOption {
	return func(h *EventsHandler) {
		if d > 0 {
			h.heartbeat = d
		}
	}
}

// NewEventsHandler creates an EventsHandler reading from source.
func NewEventsHandler(source NotificationSource, opts ...EventsOption) *EventsHandler {
	h := &EventsHandler{source: source, heartbeat: defaultHeartbeat}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Stream handles GET /api/v1/events. Each notification becomes one event
// whose name is the notification kind and whose data is the JSON body. The
// stream ends when the client goes away or the source closes.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	rc := http.NewResponseController(w)

	events, cancel := h.source.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		logger.WarnContext(ctx, "event stream cannot flush", slog.Any("error", err))
		return
	}

	// Streams outlive the server's write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, n); err != nil {
				logger.DebugContext(ctx, "event stream write failed", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, n ports.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", n.Kind, data); err != nil {
		return fmt.Errorf("writing notification: %w", err)
	}
	return nil
}
