// Package roster implements the ordered collection of actors and the
// invariants that span it: at most one active actor, at most one selected
// actor, and a sort order of descending rank with creation order breaking
// ties.
//
// A Roster is plain in-memory state. It does not persist or notify; every
// mutator returns the actors it changed so the caller can save them.
// A Roster is not safe for concurrent use.
package roster

import (
	"cmp"
	"iter"
	"slices"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
)

// Roster owns a set of actors.
type Roster struct {
	actors  []*actor.Actor
	nextSeq int64
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{nextSeq: 1}
}

// compare orders actors by descending Order, then ascending Seq.
func compare(a, b *actor.Actor) int {
	if c := cmp.Compare(b.Order, a.Order); c != 0 {
		return c
	}
	return cmp.Compare(a.Seq, b.Seq)
}

// sorted returns the actors in sort order. It is recomputed on every call so
// rank writes are reflected immediately.
func (r *Roster) sorted() []*actor.Actor {
	return slices.SortedStableFunc(slices.Values(r.actors), compare)
}

// Len returns the number of actors.
func (r *Roster) Len() int {
	return len(r.actors)
}

// Sorted returns a lazy, restartable sequence of the actors in sort order.
// Each iteration observes the ranks current at the time it starts.
func (r *Roster) Sorted() iter.Seq[*actor.Actor] {
	return func(yield func(*actor.Actor) bool) {
		for _, a := range r.sorted() {
			if !yield(a) {
				return
			}
		}
	}
}

// List returns the actors in sort order as a slice.
func (r *Roster) List() []*actor.Actor {
	return r.sorted()
}

// At returns the actor at position i of the sort order.
func (r *Roster) At(i int) (*actor.Actor, bool) {
	s := r.sorted()
	if i < 0 || i >= len(s) {
		return nil, false
	}
	return s[i], true
}

// IndexOf returns the position of the actor with the given id in the sort
// order. The boolean is false when no such actor exists; the index is then 0
// and must not be used.
func (r *Roster) IndexOf(id string) (int, bool) {
	i := slices.IndexFunc(r.sorted(), func(a *actor.Actor) bool { return a.ID == id })
	if i < 0 {
		return 0, false
	}
	return i, true
}

// Get returns the actor with the given id.
func (r *Roster) Get(id string) (*actor.Actor, bool) {
	i := slices.IndexFunc(r.actors, func(a *actor.Actor) bool { return a.ID == id })
	if i < 0 {
		return nil, false
	}
	return r.actors[i], true
}

// Active returns the actor flagged active, if any.
func (r *Roster) Active() (*actor.Actor, bool) {
	return r.flagged(func(a *actor.Actor) bool { return a.Active })
}

// Selected returns the actor flagged selected, if any.
func (r *Roster) Selected() (*actor.Actor, bool) {
	return r.flagged(func(a *actor.Actor) bool { return a.Selected })
}

// Current returns the active actor, falling back to the first actor in sort
// order when none is flagged. It returns false only for an empty roster.
func (r *Roster) Current() (*actor.Actor, bool) {
	if a, ok := r.Active(); ok {
		return a, true
	}
	return r.At(0)
}

// Focused returns the selected actor, falling back to the first actor in
// sort order when none is flagged. It returns false only for an empty roster.
func (r *Roster) Focused() (*actor.Actor, bool) {
	if a, ok := r.Selected(); ok {
		return a, true
	}
	return r.At(0)
}

func (r *Roster) flagged(pred func(*actor.Actor) bool) (*actor.Actor, bool) {
	for _, a := range r.sorted() {
		if pred(a) {
			return a, true
		}
	}
	return nil, false
}

// Create appends a new actor with default fields and returns it.
func (r *Roster) Create(title string) *actor.Actor {
	a := actor.New(title, r.nextSeq)
	r.nextSeq++
	r.actors = append(r.actors, a)
	return a
}

// Destroy detaches the actor with the given id and returns it.
func (r *Roster) Destroy(id string) (*actor.Actor, bool) {
	i := slices.IndexFunc(r.actors, func(a *actor.Actor) bool { return a.ID == id })
	if i < 0 {
		return nil, false
	}
	a := r.actors[i]
	r.actors = slices.Delete(r.actors, i, i+1)
	return a, true
}

// SetActive clears the active flag on every other actor and sets it on the
// actor with the given id. It returns every actor whose record must be saved:
// the previously active actors and the target. Unknown ids change nothing.
func (r *Roster) SetActive(id string) []*actor.Actor {
	return r.setFlag(id, func(a *actor.Actor) *bool { return &a.Active })
}

// SetSelected is SetActive for the selected flag.
func (r *Roster) SetSelected(id string) []*actor.Actor {
	return r.setFlag(id, func(a *actor.Actor) *bool { return &a.Selected })
}

func (r *Roster) setFlag(id string, field func(*actor.Actor) *bool) []*actor.Actor {
	target, ok := r.Get(id)
	if !ok {
		return nil
	}

	var changed []*actor.Actor
	for _, a := range r.actors {
		if a != target && *field(a) {
			*field(a) = false
			changed = append(changed, a)
		}
	}
	*field(target) = true
	return append(changed, target)
}

// SetOrder writes the rank of the actor with the given id. The sort order
// reflects the new rank on the next read.
func (r *Roster) SetOrder(id string, order int) (*actor.Actor, bool) {
	a, ok := r.Get(id)
	if !ok {
		return nil, false
	}
	a.Order = order
	return a, true
}

// Load replaces the roster content with persisted records. Records are
// copied. Actors without a creation sequence are numbered after the highest
// stored one, in the order given.
//
// Persisted state may violate the single-flag invariants (for instance after
// an interrupted write). Load repairs it: the first flagged actor in sort
// order keeps each flag. The repaired actors are returned so they can be
// saved again.
func (r *Roster) Load(records []actor.Actor) []*actor.Actor {
	r.actors = make([]*actor.Actor, 0, len(records))
	r.nextSeq = 1
	for _, rec := range records {
		if rec.Seq >= r.nextSeq {
			r.nextSeq = rec.Seq + 1
		}
	}
	for _, rec := range records {
		a := rec.Clone()
		if a.Seq == 0 {
			a.Seq = r.nextSeq
			r.nextSeq++
		}
		r.actors = append(r.actors, &a)
	}

	var repaired []*actor.Actor
	var seenActive, seenSelected bool
	for _, a := range r.sorted() {
		fixed := false
		if a.Active {
			if seenActive {
				a.Active = false
				fixed = true
			}
			seenActive = true
		}
		if a.Selected {
			if seenSelected {
				a.Selected = false
				fixed = true
			}
			seenSelected = true
		}
		if fixed {
			repaired = append(repaired, a)
		}
	}
	return repaired
}
