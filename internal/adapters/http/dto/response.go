// Package dto holds the JSON request and response bodies of the HTTP API and
// its RFC 9457 problem details.
package dto

import (
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

// ActorResponse is one actor in HTTP responses.
type ActorResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Order      int      `json:"order"`
	Active     bool     `json:"active"`
	Selected   bool     `json:"selected"`
	Conditions []string `json:"conditions"`
}

// RosterResponse is the whole roster in sort order.
type RosterResponse struct {
	Actors     []ActorResponse `json:"actors"`
	Count      int             `json:"count"`
	ActiveID   string          `json:"active_id,omitempty"`
	SelectedID string          `json:"selected_id,omitempty"`
}

// CommandResponse reports what happened to a submitted command.
type CommandResponse struct {
	Command    string `json:"command"`
	Recognized bool   `json:"recognized"`
	// Ignored is set when the command came from a text field and was not
	// dispatched.
	Ignored bool            `json:"ignored,omitempty"`
	Roster  *RosterResponse `json:"roster,omitempty"`
}

// ToActorResponse converts a domain actor.
func ToActorResponse(a *actor.Actor) ActorResponse {
	conditions := make([]string, len(a.Conditions))
	copy(conditions, a.Conditions)
	return ActorResponse{
		ID:         a.ID,
		Title:      a.Title,
		Order:      a.Order,
		Active:     a.Active,
		Selected:   a.Selected,
		Conditions: conditions,
	}
}

// ToRosterResponse converts a roster snapshot.
func ToRosterResponse(s ports.Snapshot) RosterResponse {
	items := make([]ActorResponse, len(s.Actors))
	for i := range s.Actors {
		items[i] = ToActorResponse(&s.Actors[i])
	}
	return RosterResponse{
		Actors:     items,
		Count:      len(items),
		ActiveID:   s.ActiveID,
		SelectedID: s.SelectedID,
	}
}

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each registered component to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
