// Package app holds the application services of the tracker: the turn
// controller that owns the roster and the interpreter that maps command
// symbols onto it. Both coordinate domain state with the store and the
// presenter through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsamuelsen11/initiative-tracker/internal/app/fanout"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/roster"
	"github.com/jsamuelsen11/initiative-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

var _ ports.TrackerService = (*TurnController)(nil)

const defaultSaveWorkers = 4

// TurnController owns the roster and is the only way to change it. Every
// operation runs under one lock, so events are applied one at a time in
// arrival order.
//
// After a mutation the controller saves each changed actor and notifies the
// presenter. Store failures are logged and counted but never returned: the
// in-memory roster stays authoritative and the next successful save of the
// same actor catches the record up.
type TurnController struct {
	mu        sync.Mutex
	roster    *roster.Roster
	store     ports.ActorStore
	presenter ports.Presenter
	logger    *slog.Logger
	metrics   *telemetry.Metrics
	workers   int
}

// ControllerOption configures a TurnController.
type ControllerOption func(*TurnController)

// WithMetrics records persistence failures on m.
func WithMetrics(m *telemetry.Metrics) ControllerOption {
	return func(c *TurnController) {
		c.metrics = m
	}
}

// WithSaveWorkers bounds the concurrent store writes issued for one event.
func WithSaveWorkers(n int) ControllerOption {
	return func(c *TurnController) {
		if n > 0 {
			c.workers = n
		}
	}
}

// NewTurnController creates a controller over an empty roster. Call Load to
// restore persisted actors.
func NewTurnController(store ports.ActorStore, presenter ports.Presenter, logger *slog.Logger, opts ...ControllerOption) *TurnController {
	c := &TurnController{
		roster:    roster.New(),
		store:     store,
		presenter: presenter,
		logger:    logger,
		workers:   defaultSaveWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the roster with the records held by the store. Records that
// fail validation are skipped. Actors whose flags had to be repaired are
// saved back.
func (c *TurnController) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.store.LoadAll(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to load actors",
			slog.String("operation", "Load"),
			slog.Any("error", err),
		)
		return fmt.Errorf("loading actors: %w", err)
	}

	valid := make([]actor.Actor, 0, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			c.logger.WarnContext(ctx, "skipping invalid actor record",
				slog.String("operation", "Load"),
				slog.String("actor_id", rec.ID),
				slog.Any("error", err),
			)
			continue
		}
		valid = append(valid, rec)
	}

	repaired := c.roster.Load(valid)
	c.logger.InfoContext(ctx, "roster loaded",
		slog.Int("actors", c.roster.Len()),
		slog.Int("repaired", len(repaired)),
	)

	c.save(ctx, "Load", repaired...)
	c.notify(ctx, ports.NotifyRoster, "")
	return nil
}

// --- Queries ---

// Snapshot returns copies of every actor in sort order.
func (c *TurnController) Snapshot(_ context.Context) ports.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := ports.Snapshot{Actors: make([]actor.Actor, 0, c.roster.Len())}
	for a := range c.roster.Sorted() {
		snap.Actors = append(snap.Actors, a.Clone())
		if a.Active && snap.ActiveID == "" {
			snap.ActiveID = a.ID
		}
		if a.Selected && snap.SelectedID == "" {
			snap.SelectedID = a.ID
		}
	}
	return snap
}

// Get returns a copy of one actor.
func (c *TurnController) Get(_ context.Context, id string) (actor.Actor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, err := c.lookup(id)
	if err != nil {
		return actor.Actor{}, err
	}
	return a.Clone(), nil
}

// --- Lifecycle and editing ---

// Create adds an actor. A blank title gets actor.DefaultTitle.
func (c *TurnController) Create(ctx context.Context, title string) (actor.Actor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a := c.roster.Create(title)
	c.logger.InfoContext(ctx, "actor created",
		slog.String("actor_id", a.ID),
		slog.String("title", a.Title),
	)

	c.save(ctx, "Create", a)
	c.notify(ctx, ports.NotifyRoster, "")
	return a.Clone(), nil
}

// Destroy removes an actor.
func (c *TurnController) Destroy(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.destroy(ctx, id)
}

func (c *TurnController) destroy(ctx context.Context, id string) error {
	if _, ok := c.roster.Destroy(id); !ok {
		return notFound(id)
	}
	c.logger.InfoContext(ctx, "actor destroyed", slog.String("actor_id", id))

	if err := c.store.Destroy(context.WithoutCancel(ctx), id); err != nil {
		c.persistFailed(ctx, "Destroy", id, err)
	}
	c.notify(ctx, ports.NotifyRoster, "")
	return nil
}

// Rename sets an actor's title. A blank title destroys the actor, in which
// case the returned bool is false.
func (c *TurnController) Rename(ctx context.Context, id, title string) (actor.Actor, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, err := c.lookup(id)
	if err != nil {
		return actor.Actor{}, false, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		if err := c.destroy(ctx, id); err != nil {
			return actor.Actor{}, false, err
		}
		return actor.Actor{}, false, nil
	}

	if a.Title != title {
		a.Title = title
		c.save(ctx, "Rename", a)
		c.notify(ctx, ports.NotifyActor, a.ID)
	}
	return a.Clone(), true, nil
}

// SetOrder writes an actor's initiative rank.
func (c *TurnController) SetOrder(ctx context.Context, id string, order int) (actor.Actor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.roster.SetOrder(id, order)
	if !ok {
		return actor.Actor{}, notFound(id)
	}

	c.save(ctx, "SetOrder", a)
	c.notify(ctx, ports.NotifyRoster, "")
	return a.Clone(), nil
}

// Activate makes the actor the only active one.
func (c *TurnController) Activate(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := c.roster.SetActive(id)
	if changed == nil {
		return notFound(id)
	}
	c.save(ctx, "Activate", changed...)
	c.notifyActors(ctx, changed)
	return nil
}

// Select makes the actor the only selected one.
func (c *TurnController) Select(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := c.roster.SetSelected(id)
	if changed == nil {
		return notFound(id)
	}
	c.save(ctx, "Select", changed...)
	c.notifyActors(ctx, changed)
	return nil
}

// --- Conditions by id ---

// AddCondition appends a trimmed label unless the actor already carries it.
// A blank label is a validation error.
func (c *TurnController) AddCondition(ctx context.Context, id, label string) (actor.Actor, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return actor.Actor{}, domain.NewValidationError("label", domain.MsgMustNotEmpty)
	}
	return c.editConditions(ctx, "AddCondition", id, func(cs *actor.Conditions) bool {
		return cs.Add(label)
	})
}

// RemoveCondition removes a label if present.
func (c *TurnController) RemoveCondition(ctx context.Context, id, label string) (actor.Actor, error) {
	return c.editConditions(ctx, "RemoveCondition", id, func(cs *actor.Conditions) bool {
		return cs.Remove(label)
	})
}

// ClearConditions removes every label.
func (c *TurnController) ClearConditions(ctx context.Context, id string) (actor.Actor, error) {
	return c.editConditions(ctx, "ClearConditions", id, (*actor.Conditions).RemoveAll)
}

// Rotate moves the first label to the end.
func (c *TurnController) Rotate(ctx context.Context, id string) (actor.Actor, error) {
	return c.editConditions(ctx, "Rotate", id, (*actor.Conditions).Rotate)
}

func (c *TurnController) editConditions(ctx context.Context, op, id string, edit func(*actor.Conditions) bool) (actor.Actor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, err := c.lookup(id)
	if err != nil {
		return actor.Actor{}, err
	}
	c.applyConditions(ctx, op, a, edit)
	return a.Clone(), nil
}

// applyConditions saves and re-renders a only when edit changed the list.
func (c *TurnController) applyConditions(ctx context.Context, op string, a *actor.Actor, edit func(*actor.Conditions) bool) {
	if !edit(&a.Conditions) {
		return
	}
	c.save(ctx, op, a)
	c.notify(ctx, ports.NotifyActor, a.ID)
}

// --- Keyboard-driven operations ---

// ActivateNext moves the turn to the next actor, wrapping from the last to
// the first. With no active actor the round starts at the first actor.
func (c *TurnController) ActivateNext(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.step(ctx, "ActivateNext", c.roster.Active, c.roster.SetActive, 1)
}

// ActivatePrevious moves the turn to the previous actor, wrapping from the
// first to the last.
func (c *TurnController) ActivatePrevious(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.step(ctx, "ActivatePrevious", c.roster.Active, c.roster.SetActive, -1)
}

// SelectDown moves the selection one actor toward the end of the roster
// (index +1), wrapping to the top. It is bound to the j key; the name
// describes the movement down the rendered list, not a decreasing index.
func (c *TurnController) SelectDown(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.step(ctx, "SelectDown", c.roster.Selected, c.roster.SetSelected, 1)
}

// SelectUp moves the selection one actor toward the top of the roster
// (index -1), wrapping to the end. It is bound to the k key.
func (c *TurnController) SelectUp(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.step(ctx, "SelectUp", c.roster.Selected, c.roster.SetSelected, -1)
}

// step moves a flag delta positions through the sort order. When no actor
// carries the flag the implicit holder is the first actor: a forward step
// lands on it, a backward step wraps to the last.
func (c *TurnController) step(
	ctx context.Context,
	op string,
	flagged func() (*actor.Actor, bool),
	set func(id string) []*actor.Actor,
	delta int,
) {
	n := c.roster.Len()
	if n == 0 {
		return
	}

	next := 0
	if cur, ok := flagged(); ok {
		i, _ := c.roster.IndexOf(cur.ID)
		next = ((i+delta)%n + n) % n
	} else if delta < 0 {
		next = n - 1
	}

	target, _ := c.roster.At(next)
	changed := set(target.ID)
	c.logger.DebugContext(ctx, "flag moved",
		slog.String("operation", op),
		slog.String("actor_id", target.ID),
	)

	c.save(ctx, op, changed...)
	c.notifyActors(ctx, changed)
	c.renderCurrent(ctx)
}

// Promote moves the selected actor one place up by ranking it just above
// its predecessor. The first actor stays where it is.
func (c *TurnController) Promote(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rank(ctx, "Promote", -1, func(target int) int { return target + 1 })
}

// Demote moves the selected actor one place down by ranking it just below
// its successor, never below zero. The last actor stays where it is.
func (c *TurnController) Demote(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rank(ctx, "Demote", 1, func(target int) int { return max(0, target-1) })
}

func (c *TurnController) rank(ctx context.Context, op string, delta int, order func(target int) int) {
	sel, ok := c.roster.Focused()
	if !ok {
		return
	}

	cur, _ := c.roster.IndexOf(sel.ID)
	to := min(max(cur+delta, 0), c.roster.Len()-1)
	if to != cur {
		target, _ := c.roster.At(to)
		c.roster.SetOrder(sel.ID, order(target.Order))
		c.save(ctx, op, sel)
		c.notify(ctx, ports.NotifyRoster, "")
	}
	c.renderCurrent(ctx)
}

// RemoveFirstCondition drops the first condition of the current actor.
func (c *TurnController) RemoveFirstCondition(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.roster.Current()
	if !ok {
		return
	}
	c.applyConditions(ctx, "RemoveFirstCondition", a, func(cs *actor.Conditions) bool {
		first, ok := cs.First()
		return ok && cs.Remove(first)
	})
}

// RotateConditions rotates the conditions of the current actor.
func (c *TurnController) RotateConditions(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a, ok := c.roster.Current(); ok {
		c.applyConditions(ctx, "RotateConditions", a, (*actor.Conditions).Rotate)
	}
}

// RemoveAllConditions clears the conditions of the focused actor.
func (c *TurnController) RemoveAllConditions(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a, ok := c.roster.Focused(); ok {
		c.applyConditions(ctx, "RemoveAllConditions", a, (*actor.Conditions).RemoveAll)
	}
}

// RenderCurrent asks presentation to redraw the current actor.
func (c *TurnController) RenderCurrent(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.renderCurrent(ctx)
}

// EditInitiative asks presentation to open rank editing on the focused actor.
func (c *TurnController) EditInitiative(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a, ok := c.roster.Focused(); ok {
		c.notify(ctx, ports.NotifyEditInitiative, a.ID)
	}
}

// EnterCondition asks presentation to open condition entry on the focused
// actor.
func (c *TurnController) EnterCondition(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a, ok := c.roster.Focused(); ok {
		c.notify(ctx, ports.NotifyAddCondition, a.ID)
	}
}

// --- Helpers (callers hold mu) ---

func (c *TurnController) lookup(id string) (*actor.Actor, error) {
	a, ok := c.roster.Get(id)
	if !ok {
		return nil, notFound(id)
	}
	return a, nil
}

func notFound(id string) error {
	return fmt.Errorf("actor %q: %w", id, domain.ErrNotFound)
}

func (c *TurnController) renderCurrent(ctx context.Context) {
	if a, ok := c.roster.Current(); ok {
		c.notify(ctx, ports.NotifyActor, a.ID)
	}
}

func (c *TurnController) notify(ctx context.Context, kind ports.NotificationKind, id string) {
	c.presenter.Notify(ctx, ports.Notification{Kind: kind, ActorID: id})
}

func (c *TurnController) notifyActors(ctx context.Context, actors []*actor.Actor) {
	for _, a := range actors {
		c.notify(ctx, ports.NotifyActor, a.ID)
	}
}

// save writes copies of actors to the store concurrently. The writes are
// detached from ctx cancellation: a change applied in memory is always
// offered to the store, even when the caller has gone away.
func (c *TurnController) save(ctx context.Context, op string, actors ...*actor.Actor) {
	if len(actors) == 0 {
		return
	}

	records := make([]actor.Actor, len(actors))
	for i, a := range actors {
		records[i] = a.Clone()
	}

	errs := fanout.Each(context.WithoutCancel(ctx), c.workers, records, c.store.Save)
	for i, err := range errs {
		if err != nil {
			c.persistFailed(ctx, op, records[i].ID, err)
		}
	}
}

func (c *TurnController) persistFailed(ctx context.Context, op, id string, err error) {
	c.logger.WarnContext(ctx, "failed to persist actor",
		slog.String("operation", op),
		slog.String("actor_id", id),
		slog.Any("error", err),
	)
	c.metrics.RecordPersistenceFailure(ctx, op)
}
