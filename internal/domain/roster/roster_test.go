package roster

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain/actor"
)

// orders returns the Order of each actor in sort order.
func orders(r *Roster) []int {
	var out []int
	for a := range r.Sorted() {
		out = append(out, a.Order)
	}
	return out
}

func titles(r *Roster) []string {
	var out []string
	for a := range r.Sorted() {
		out = append(out, a.Title)
	}
	return out
}

func newRoster(t *testing.T, ranks map[string]int, names ...string) *Roster {
	t.Helper()
	r := New()
	for _, n := range names {
		a := r.Create(n)
		r.SetOrder(a.ID, ranks[n])
	}
	return r
}

func countFlags(r *Roster) (active, selected int) {
	for a := range r.Sorted() {
		if a.Active {
			active++
		}
		if a.Selected {
			selected++
		}
	}
	return active, selected
}

func TestCreate_OnEmptyRoster(t *testing.T) {
	t.Parallel()

	r := New()
	a := r.Create("Goblin")

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if a.Order != 0 || a.Active || a.Selected || len(a.Conditions) != 0 {
		t.Errorf("created actor = %+v, want defaults", a)
	}
	if got, ok := r.Get(a.ID); !ok || got != a {
		t.Error("Get(created.ID) did not return the created actor")
	}
}

func TestSorted_DescendingOrderWithCreationTieBreak(t *testing.T) {
	t.Parallel()

	r := newRoster(t, map[string]int{"A": 5, "B": 10, "C": 5, "D": 1}, "A", "B", "C", "D")

	want := []string{"B", "A", "C", "D"}
	if got := titles(r); !slices.Equal(got, want) {
		t.Errorf("sorted titles = %v, want %v", got, want)
	}
}

func TestSorted_RecomputedAfterOrderWrite(t *testing.T) {
	t.Parallel()

	r := newRoster(t, map[string]int{"A": 5, "B": 3}, "A", "B")
	b, _ := r.At(1)

	r.SetOrder(b.ID, 9)

	if got := titles(r); !slices.Equal(got, []string{"B", "A"}) {
		t.Errorf("sorted titles = %v, want [B A]", got)
	}
}

func TestSorted_Restartable(t *testing.T) {
	t.Parallel()

	r := newRoster(t, nil, "A", "B", "C")
	seq := r.Sorted()

	var first, second []string
	for a := range seq {
		first = append(first, a.Title)
	}
	for a := range seq {
		second = append(second, a.Title)
		break
	}

	if len(first) != 3 || len(second) != 1 || second[0] != first[0] {
		t.Errorf("first pass = %v, second pass = %v", first, second)
	}
}

func TestIndexOf(t *testing.T) {
	t.Parallel()

	r := newRoster(t, map[string]int{"A": 1, "B": 2}, "A", "B")
	a, _ := r.Get(r.List()[1].ID)

	i, ok := r.IndexOf(a.ID)
	if !ok || i != 1 {
		t.Errorf("IndexOf(A) = (%d, %v), want (1, true)", i, ok)
	}

	if _, ok := r.IndexOf("missing"); ok {
		t.Error("IndexOf(missing) ok = true, want false")
	}
}

func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()

	r := New()
	if _, ok := r.At(0); ok {
		t.Error("At(0) on empty roster ok = true, want false")
	}
	r.Create("A")
	if _, ok := r.At(-1); ok {
		t.Error("At(-1) ok = true, want false")
	}
	if _, ok := r.At(1); ok {
		t.Error("At(1) ok = true, want false")
	}
}

func TestSetActive_ClearsOthers(t *testing.T) {
	t.Parallel()

	r := newRoster(t, nil, "A", "B", "C")
	list := r.List()

	changed := r.SetActive(list[0].ID)
	if len(changed) != 1 || changed[0] != list[0] {
		t.Errorf("first SetActive changed = %d actors, want only the target", len(changed))
	}

	changed = r.SetActive(list[2].ID)
	if len(changed) != 2 {
		t.Fatalf("second SetActive changed = %d actors, want 2", len(changed))
	}
	if changed[0] != list[0] || changed[1] != list[2] {
		t.Error("changed actors should be the previous active then the target")
	}
	if list[0].Active || !list[2].Active {
		t.Errorf("flags = %v/%v, want false/true", list[0].Active, list[2].Active)
	}
}

func TestSetActive_UnknownIDChangesNothing(t *testing.T) {
	t.Parallel()

	r := newRoster(t, nil, "A", "B")
	first := r.List()[0]
	r.SetActive(first.ID)

	if changed := r.SetActive("missing"); changed != nil {
		t.Errorf("SetActive(missing) changed = %v, want nil", changed)
	}
	if !first.Active {
		t.Error("SetActive(missing) cleared the active actor")
	}
}

func TestSetFlags_SingleFlagInvariant(t *testing.T) {
	t.Parallel()

	r := newRoster(t, nil, "A", "B", "C", "D", "E")
	ids := make([]string, 0, r.Len())
	for a := range r.Sorted() {
		ids = append(ids, a.ID)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for step := range 200 {
		id := ids[rng.IntN(len(ids))]
		if rng.IntN(2) == 0 {
			r.SetActive(id)
		} else {
			r.SetSelected(id)
		}

		active, selected := countFlags(r)
		if active > 1 || selected > 1 {
			t.Fatalf("step %d: active=%d selected=%d, want at most 1 each", step, active, selected)
		}
	}

	active, selected := countFlags(r)
	if active != 1 || selected != 1 {
		t.Errorf("after run: active=%d selected=%d, want 1 and 1", active, selected)
	}
}

func TestSetSelected_IndependentOfActive(t *testing.T) {
	t.Parallel()

	r := newRoster(t, nil, "A", "B")
	list := r.List()

	r.SetActive(list[0].ID)
	r.SetSelected(list[1].ID)

	if !list[0].Active || list[0].Selected {
		t.Errorf("A active/selected = %v/%v, want true/false", list[0].Active, list[0].Selected)
	}
	if list[1].Active || !list[1].Selected {
		t.Errorf("B active/selected = %v/%v, want false/true", list[1].Active, list[1].Selected)
	}
}

func TestCurrentAndFocused_FallBackToFirst(t *testing.T) {
	t.Parallel()

	r := New()
	if _, ok := r.Current(); ok {
		t.Error("Current() on empty roster ok = true, want false")
	}
	if _, ok := r.Focused(); ok {
		t.Error("Focused() on empty roster ok = true, want false")
	}

	r = newRoster(t, map[string]int{"A": 1, "B": 9}, "A", "B")
	cur, _ := r.Current()
	foc, _ := r.Focused()
	if cur.Title != "B" || foc.Title != "B" {
		t.Errorf("Current/Focused = %q/%q, want B/B", cur.Title, foc.Title)
	}

	a := r.List()[1]
	r.SetActive(a.ID)
	if cur, _ := r.Current(); cur != a {
		t.Errorf("Current() = %q, want flagged actor A", cur.Title)
	}
}

func TestDestroy(t *testing.T) {
	t.Parallel()

	r := newRoster(t, nil, "A", "B")
	a := r.List()[0]

	got, ok := r.Destroy(a.ID)
	if !ok || got != a {
		t.Fatal("Destroy did not return the removed actor")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if _, ok := r.Get(a.ID); ok {
		t.Error("destroyed actor still present")
	}
	if _, ok := r.Destroy(a.ID); ok {
		t.Error("second Destroy ok = true, want false")
	}
}

func TestLoad_ContinuesSequenceAndRepairsFlags(t *testing.T) {
	t.Parallel()

	records := []actor.Actor{
		{ID: "a", Title: "A", Order: 1, Active: true, Seq: 4},
		{ID: "b", Title: "B", Order: 5, Active: true, Selected: true, Seq: 2},
		{ID: "c", Title: "C", Order: 3, Selected: true},
	}

	r := New()
	repaired := r.Load(records)

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if got := titles(r); !slices.Equal(got, []string{"B", "C", "A"}) {
		t.Errorf("sorted titles = %v, want [B C A]", got)
	}

	active, _ := r.Active()
	selected, _ := r.Selected()
	if active.ID != "b" || selected.ID != "b" {
		t.Errorf("active/selected = %q/%q, want b/b", active.ID, selected.ID)
	}
	if len(repaired) != 2 {
		t.Errorf("repaired = %d actors, want 2 (a lost active, c lost selected)", len(repaired))
	}

	c, _ := r.Get("c")
	if c.Seq != 5 {
		t.Errorf("unsequenced record Seq = %d, want 5", c.Seq)
	}
	if created := r.Create("D"); created.Seq != 6 {
		t.Errorf("next created Seq = %d, want 6", created.Seq)
	}

	records[0].Title = "mutated"
	if a, _ := r.Get("a"); a.Title != "A" {
		t.Error("Load did not copy records")
	}
}

func TestOrders_PromoteExample(t *testing.T) {
	t.Parallel()

	r := newRoster(t, map[string]int{"X": 5, "Y": 3, "Z": 1}, "X", "Y", "Z")
	if got := orders(r); !slices.Equal(got, []int{5, 3, 1}) {
		t.Fatalf("orders = %v, want [5 3 1]", got)
	}

	y := r.List()[1]
	above, _ := r.At(0)
	r.SetOrder(y.ID, above.Order+1)

	if got := orders(r); !slices.Equal(got, []int{6, 5, 1}) {
		t.Errorf("orders = %v, want [6 5 1]", got)
	}
}
