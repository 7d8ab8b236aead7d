package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain/command"
	"github.com/jsamuelsen11/initiative-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

var _ ports.CommandDispatcher = (*Interpreter)(nil)

// TurnActions is the set of roster operations reachable from the keyboard.
// *TurnController implements it.
type TurnActions interface {
	RemoveFirstCondition(ctx context.Context)
	ActivatePrevious(ctx context.Context)
	ActivateNext(ctx context.Context)
	RotateConditions(ctx context.Context)
	RenderCurrent(ctx context.Context)
	SelectDown(ctx context.Context)
	SelectUp(ctx context.Context)
	EditInitiative(ctx context.Context)
	EnterCondition(ctx context.Context)
	RemoveAllConditions(ctx context.Context)
	Promote(ctx context.Context)
	Demote(ctx context.Context)
}

var _ TurnActions = (*TurnController)(nil)

// Interpreter maps command symbols onto TurnActions. It holds no state of
// its own beyond the dispatch table.
type Interpreter struct {
	handlers map[command.Command]func(context.Context)
	logger   *slog.Logger
	metrics  *telemetry.Metrics
}

// NewInterpreter builds the dispatch table over turns. metrics may be nil.
func NewInterpreter(turns TurnActions, logger *slog.Logger, metrics *telemetry.Metrics) *Interpreter {
	return &Interpreter{
		handlers: map[command.Command]func(context.Context){
			command.RemoveFirstCondition: turns.RemoveFirstCondition,
			command.Previous:             turns.ActivatePrevious,
			command.Rotate: func(ctx context.Context) {
				turns.RotateConditions(ctx)
				turns.RenderCurrent(ctx)
			},
			command.Next:               turns.ActivateNext,
			command.Confirm:            turns.ActivateNext,
			command.SelectDown:         turns.SelectDown,
			command.SelectUp:           turns.SelectUp,
			command.EditInitiative:     turns.EditInitiative,
			command.AddCondition:       turns.EnterCondition,
			command.ClearAllConditions: turns.RemoveAllConditions,
			command.RankUp:             turns.Promote,
			command.RankDown:           turns.Demote,
			command.RefreshCurrent:     turns.RenderCurrent,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// Dispatch runs the operation bound to cmd and reports whether there was
// one. Unbound commands change nothing.
func (i *Interpreter) Dispatch(ctx context.Context, cmd command.Command) bool {
	handler, ok := i.handlers[cmd]
	i.metrics.RecordCommand(ctx, string(cmd), ok)
	if !ok {
		i.logger.DebugContext(ctx, "ignoring unrecognized command", slog.String("command", string(cmd)))
		return false
	}

	i.logger.DebugContext(ctx, "dispatching command", slog.String("command", string(cmd)))
	handler(ctx)
	return true
}
