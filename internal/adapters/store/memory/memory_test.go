package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/store/memory"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
)

func TestStore_SaveLoadDestroy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()

	goblin := actor.Actor{ID: "g", Title: "Goblin", Order: 3, Seq: 2, Conditions: actor.Conditions{"prone"}}
	orc := actor.Actor{ID: "o", Title: "Orc", Order: 7, Seq: 1, Active: true}

	for _, a := range []actor.Actor{goblin, orc} {
		if err := s.Save(ctx, a); err != nil {
			t.Fatalf("Save(%s) error = %v", a.ID, err)
		}
	}

	got, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "o" || got[1].ID != "g" {
		t.Fatalf("LoadAll = %+v, want [o g] by Seq", got)
	}
	if !got[1].Conditions.Contains("prone") {
		t.Errorf("goblin conditions = %v, want prone", got[1].Conditions)
	}

	if err := s.Destroy(ctx, "g"); err != nil {
		t.Fatalf("Destroy error = %v", err)
	}
	if err := s.Destroy(ctx, "missing"); err != nil {
		t.Errorf("Destroy(missing) error = %v, want nil", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStore_CopiesRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := actor.Actor{ID: "a", Title: "A", Conditions: actor.Conditions{"x"}}
	s := memory.New(a)

	a.Conditions[0] = "mutated"

	got, _ := s.LoadAll(ctx)
	if got[0].Conditions[0] != "x" {
		t.Errorf("stored conditions = %v, want [x]", got[0].Conditions)
	}

	got[0].Conditions[0] = "mutated again"
	again, _ := s.LoadAll(ctx)
	if again[0].Conditions[0] != "x" {
		t.Errorf("stored conditions = %v after caller mutation, want [x]", again[0].Conditions)
	}
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := memory.New()
	if err := s.Save(ctx, actor.Actor{ID: "a"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Save error = %v, want context.Canceled", err)
	}
	if _, err := s.LoadAll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("LoadAll error = %v, want context.Canceled", err)
	}
}
