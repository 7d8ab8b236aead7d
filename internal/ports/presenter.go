package ports

import "context"

// NotificationKind identifies what a presentation collaborator should do.
type NotificationKind string

const (
	// NotifyActor asks for one actor to be re-rendered.
	NotifyActor NotificationKind = "actor"
	// NotifyRoster asks for the whole roster to be re-rendered, e.g. after
	// an actor was added or removed or the sort order changed.
	NotifyRoster NotificationKind = "roster"
	// NotifyEditInitiative asks presentation to open rank editing for an actor.
	NotifyEditInitiative NotificationKind = "edit-initiative"
	// NotifyAddCondition asks presentation to open condition entry for an actor.
	NotifyAddCondition NotificationKind = "add-condition"
)

// Notification is a "this changed" signal. ActorID is empty for roster scope.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	ActorID string           `json:"actor_id,omitempty"`
}

// Presenter receives render notifications. The core never formats data for
// display; it only reports what changed. Notify must not block.
type Presenter interface {
	Notify(ctx context.Context, n Notification)
}
