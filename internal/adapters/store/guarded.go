// Package store holds the ports.ActorStore implementations and the circuit
// breaker that fronts whichever one is configured.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
	"github.com/jsamuelsen11/initiative-tracker/internal/platform/config"
	"github.com/jsamuelsen11/initiative-tracker/internal/ports"
)

var (
	_ ports.ActorStore    = (*Guarded)(nil)
	_ ports.HealthChecker = (*Guarded)(nil)
)

const tracerName = "actor-store"

// Guarded wraps an ActorStore with a circuit breaker and a trace span per
// call. While the breaker is open calls fail fast with domain.ErrUnavailable.
type Guarded struct {
	inner   ports.ActorStore
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
}

// NewGuarded wraps inner. name labels the breaker, the spans and the
// readiness entry.
func NewGuarded(inner ports.ActorStore, name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *Guarded {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// Bad input and abandoned requests say nothing about the store.
			return err == nil ||
				errors.Is(err, domain.ErrValidation) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Guarded{inner: inner, name: name, breaker: cb}
}

// LoadAll implements ports.ActorStore.
func (g *Guarded) LoadAll(ctx context.Context) ([]actor.Actor, error) {
	var out []actor.Actor
	err := g.do(ctx, "LoadAll", "", func(ctx context.Context) error {
		var err error
		out, err = g.inner.LoadAll(ctx)
		return err
	})
	return out, err
}

// Save implements ports.ActorStore.
func (g *Guarded) Save(ctx context.Context, a actor.Actor) error {
	return g.do(ctx, "Save", a.ID, func(ctx context.Context) error {
		return g.inner.Save(ctx, a)
	})
}

// Destroy implements ports.ActorStore.
func (g *Guarded) Destroy(ctx context.Context, id string) error {
	return g.do(ctx, "Destroy", id, func(ctx context.Context) error {
		return g.inner.Destroy(ctx, id)
	})
}

func (g *Guarded) do(ctx context.Context, op, actorID string, fn func(context.Context) error) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, g.name+"."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("tracker.operation", op)),
	)
	defer span.End()
	if actorID != "" {
		span.SetAttributes(attribute.String("tracker.actor_id", actorID))
	}

	_, err := g.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s: %w: %w", g.name, domain.ErrUnavailable, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Name implements ports.HealthChecker.
func (g *Guarded) Name() string {
	return g.name
}

// HealthCheck reports the breaker state. With the breaker closed it defers to
// the wrapped store when that store can check itself.
func (g *Guarded) HealthCheck(ctx context.Context) error {
	switch state := g.breaker.State(); state {
	case gobreaker.StateClosed:
		if hc, ok := g.inner.(ports.HealthChecker); ok {
			return hc.HealthCheck(ctx)
		}
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.name, state)
	}
}

func toUint32(n int) uint32 {
	if n <= 0 {
		return 0
	}
	return uint32(min(n, int(^uint32(0)>>1)))
}
