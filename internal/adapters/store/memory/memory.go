// Package memory is an in-process ports.ActorStore. It backs the local
// profile and tests; records do not survive a restart.
package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

var _ ports.ActorStore = (*Store)(nil)

// Store keeps actor records in a map keyed by id. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]actor.Actor
}

// New creates an empty store, optionally seeded with records.
func New(seed ...actor.Actor) *Store {
	s := &Store{records: make(map[string]actor.Actor, len(seed))}
	for _, a := range seed {
		s.records[a.ID] = a.Clone()
	}
	return s
}

// LoadAll returns copies of every record ordered by creation sequence.
func (s *Store) LoadAll(ctx context.Context) ([]actor.Actor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]actor.Actor, 0, len(s.records))
	for _, id := range slices.Sorted(maps.Keys(s.records)) {
		rec := s.records[id]
		out = append(out, rec.Clone())
	}
	slices.SortStableFunc(out, func(a, b actor.Actor) int {
		return cmp.Compare(a.Seq, b.Seq)
	})
	return out, nil
}

// Save stores a copy of a.
func (s *Store) Save(ctx context.Context, a actor.Actor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[a.ID] = a.Clone()
	return nil
}

// Destroy removes the record for id if present.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Name identifies the store in readiness output.
func (s *Store) Name() string {
	return "actor-store"
}

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}
