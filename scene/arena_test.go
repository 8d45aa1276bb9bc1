package scene

import "testing"

func TestArenaInsertGetRemove(t *testing.T) {
	var a arena

	s1 := &Source{}
	s2 := &Source{}
	s3 := &Source{}

	h1 := a.insert(s1)
	h2 := a.insert(s2)
	h3 := a.insert(s3)

	if got, ok := a.get(h2); !ok || got != s2 {
		t.Fatal("get returned wrong source")
	}

	if !a.remove(h2) {
		t.Fatal("remove failed")
	}
	if a.remove(h2) {
		t.Fatal("double remove succeeded")
	}
	if _, ok := a.get(h2); ok {
		t.Fatal("removed handle still resolves")
	}

	// Other handles stay valid.
	if got, ok := a.get(h1); !ok || got != s1 {
		t.Fatal("h1 invalidated by removal")
	}
	if got, ok := a.get(h3); !ok || got != s3 {
		t.Fatal("h3 invalidated by removal")
	}

	// Slot reuse bumps the generation, so the stale handle stays dead.
	s4 := &Source{}
	h4 := a.insert(s4)
	if h4.index != h2.index {
		t.Fatalf("expected slot reuse: got %d, want %d", h4.index, h2.index)
	}
	if h4.generation == h2.generation {
		t.Fatal("generation not bumped on reuse")
	}
	if _, ok := a.get(h2); ok {
		t.Fatal("stale handle resolves after slot reuse")
	}
}

func TestArenaIterationOrder(t *testing.T) {
	var a arena

	sources := []*Source{{}, {}, {}, {}}
	handles := make([]Handle, len(sources))
	for i, s := range sources {
		handles[i] = a.insert(s)
	}

	a.remove(handles[1])
	a.insert(&Source{}) // reuses slot 1, but appends to the iteration order

	var got []*Source
	a.forEach(func(s *Source) { got = append(got, s) })

	if len(got) != 4 {
		t.Fatalf("live count: got %d, want 4", len(got))
	}
	if got[0] != sources[0] || got[1] != sources[2] || got[2] != sources[3] {
		t.Fatal("creation order not preserved after removal")
	}
}
