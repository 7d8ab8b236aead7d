package ports

import (
	"context"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
)

// ActorStore is the persistence port for actor records, keyed by actor id.
// Implemented by the store adapters; called by the turn controller after
// every mutation. The controller treats failures as non-fatal: in-memory
// state stays authoritative for the session.
type ActorStore interface {
	// LoadAll returns every persisted actor record. Order is unspecified;
	// the roster sorts on load.
	LoadAll(ctx context.Context) ([]actor.Actor, error)

	// Save creates or replaces the record for a.ID.
	Save(ctx context.Context, a actor.Actor) error

	// Destroy removes the record for id. Removing an absent record is not an
	// error.
	Destroy(ctx context.Context, id string) error
}
