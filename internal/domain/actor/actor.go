// Package actor defines the roster entry of the initiative tracker: a
// combatant with a display title, an initiative rank, the active and selected
// flags, and its list of status conditions.
package actor

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
)

// DefaultTitle is the placeholder given to actors created without a title.
const DefaultTitle = "empty actor..."

// Actor is one roster entry. Actors are owned by a roster; the active and
// selected flags are only meaningful relative to the other actors in it.
type Actor struct {
	ID         string
	Title      string
	Order      int
	Active     bool
	Selected   bool
	Conditions Conditions

	// Seq is the creation sequence within the roster. It breaks ties between
	// actors with equal Order so sorting is deterministic.
	Seq int64
}

// New returns an actor with a fresh id and default fields. A blank title is
// replaced with DefaultTitle.
func New(title string, seq int64) *Actor {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	return &Actor{
		ID:         uuid.NewString(),
		Title:      title,
		Conditions: Conditions{},
		Seq:        seq,
	}
}

// Clone returns a deep copy of the actor, safe to hand outside the roster.
func (a *Actor) Clone() Actor {
	c := *a
	c.Conditions = a.Conditions.Clone()
	return c
}

// Validate checks that a persisted record can be loaded into a roster.
// Returns a *domain.ValidationError with per-field details, or nil.
func (a *Actor) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(a.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(a.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	for _, c := range a.Conditions {
		if strings.TrimSpace(c) == "" {
			fields["conditions"] = "must not contain blank labels"
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
