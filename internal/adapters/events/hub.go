// Package events is the presentation adapter: it fans tracker notifications
// out to every connected subscriber, typically a browser holding a
// Server-Sent Events stream.
package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

var (
	_ ports.Presenter     = (*Hub)(nil)
	_ ports.HealthChecker = (*Hub)(nil)
)

const defaultBuffer = 16

var errClosed = errors.New("event hub closed")

// Hub broadcasts notifications to subscribers. Notify never blocks: a
// subscriber whose buffer is full misses the notification.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]chan ports.Notification
	buffer int
	closed bool
	logger *slog.Logger
}

// NewHub creates a hub whose subscribers buffer up to buffer notifications.
func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer < 1 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   make(map[string]chan ports.Notification),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a subscriber. The returned cancel func unregisters it
// and closes the channel; it is safe to call more than once and after Close.
// After Close the channel comes back already closed.
func (h *Hub) Subscribe() (<-chan ports.Notification, func()) {
	id := uuid.NewString()
	ch := make(chan ports.Notification, h.buffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.subs[id] = ch
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(ch)
		}
	}
}

// Subscribers returns the number of registered subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Notify implements ports.Presenter.
func (h *Hub) Notify(ctx context.Context, n ports.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- n:
		default:
			h.logger.WarnContext(ctx, "dropping notification for slow subscriber",
				slog.String("subscriber_id", id),
				slog.String("kind", string(n.Kind)),
				slog.String("actor_id", n.ActorID),
			)
		}
	}
}

// Name implements ports.HealthChecker.
func (h *Hub) Name() string {
	return "events"
}

// HealthCheck reports the hub unhealthy once it has been closed.
func (h *Hub) HealthCheck(_ context.Context) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return errClosed
	}
	return nil
}

// Close unregisters every subscriber, closes their channels and refuses new
// subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
