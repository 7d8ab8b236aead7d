package ports

import (
	"context"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/command"
)

// Snapshot is a point-in-time copy of the roster in sort order.
type Snapshot struct {
	Actors []actor.Actor
	// ActiveID and SelectedID are the flagged actors, empty when none is
	// flagged.
	ActiveID   string
	SelectedID string
}

// TrackerService defines the service port for roster operations.
// Implemented by the application layer; called by inbound adapters.
// Id-addressed methods return domain.ErrNotFound for unknown ids.
type TrackerService interface {
	// Snapshot returns the roster in sort order.
	Snapshot(ctx context.Context) Snapshot

	// Get returns one actor.
	Get(ctx context.Context, id string) (actor.Actor, error)

	// Create adds an actor with default fields.
	Create(ctx context.Context, title string) (actor.Actor, error)

	// Destroy removes an actor.
	Destroy(ctx context.Context, id string) error

	// Rename sets an actor's title. A blank title destroys the actor; the
	// returned bool reports whether the actor still exists.
	Rename(ctx context.Context, id, title string) (actor.Actor, bool, error)

	// SetOrder sets an actor's initiative rank.
	SetOrder(ctx context.Context, id string, order int) (actor.Actor, error)

	// Activate makes the actor the only active one.
	Activate(ctx context.Context, id string) error

	// Select makes the actor the only selected one.
	Select(ctx context.Context, id string) error

	// AddCondition appends a condition label; duplicates are ignored.
	// Returns domain.ErrValidation for a blank label.
	AddCondition(ctx context.Context, id, label string) (actor.Actor, error)

	// RemoveCondition removes a condition label if present.
	RemoveCondition(ctx context.Context, id, label string) (actor.Actor, error)

	// ClearConditions removes every condition label.
	ClearConditions(ctx context.Context, id string) (actor.Actor, error)

	// Rotate moves the first condition label to the end.
	Rotate(ctx context.Context, id string) (actor.Actor, error)
}

// CommandDispatcher maps decoded command symbols to tracker operations.
// Implemented by the application layer's interpreter.
type CommandDispatcher interface {
	// Dispatch runs the operation bound to cmd. Unrecognized commands are
	// logged and ignored; the returned bool reports whether cmd was bound.
	Dispatch(ctx context.Context, cmd command.Command) bool
}
