package engine

import (
	"testing"

	"github.com/skilletworks/lunchrush/component"
	"github.com/skilletworks/lunchrush/core"
)

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[component.PositionComponent]("Position")
	e := core.Entity{ID: 1, Version: 1}

	if s.Has(e) {
		t.Error("Expected empty store to not have entity")
	}

	s.Set(e, component.PositionComponent{X: 3, Y: 4})
	if !s.Has(e) {
		t.Error("Expected store to have entity after Set")
	}

	pos, ok := s.Get(e)
	if !ok {
		t.Fatal("Expected Get to succeed after Set")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Expected (3, 4), got (%v, %v)", pos.X, pos.Y)
	}

	// Set overwrites in place without growing the dense list
	s.Set(e, component.PositionComponent{X: 5, Y: 6})
	if s.Count() != 1 {
		t.Errorf("Expected count 1 after overwrite, got %d", s.Count())
	}
	pos, _ = s.Get(e)
	if pos.X != 5 {
		t.Errorf("Expected overwritten X=5, got %v", pos.X)
	}

	s.Remove(e)
	if s.Has(e) {
		t.Error("Expected entity gone after Remove")
	}
	if _, ok := s.Get(e); ok {
		t.Error("Expected Get to fail after Remove")
	}

	// Removing twice is a no-op
	s.Remove(e)
	if s.Count() != 0 {
		t.Errorf("Expected count 0, got %d", s.Count())
	}
}

func TestStore_SwapRemoveKeepsDenseListConsistent(t *testing.T) {
	s := NewStore[component.SharpnessComponent]("Sharpness")
	entities := make([]core.Entity, 5)
	for i := range entities {
		entities[i] = core.Entity{ID: uint32(i + 1), Version: 1}
		s.Set(entities[i], component.SharpnessComponent{Level: float64(i), MaxLevel: 10})
	}

	// Remove from the middle; the last entity swaps into its slot
	s.Remove(entities[2])

	if s.Count() != 4 {
		t.Fatalf("Expected 4 entities, got %d", s.Count())
	}
	for i, e := range entities {
		if i == 2 {
			if s.Has(e) {
				t.Errorf("Expected entity %d removed", e.ID)
			}
			continue
		}
		comp, ok := s.Get(e)
		if !ok {
			t.Errorf("Expected entity %d to survive removal of another row", e.ID)
			continue
		}
		if comp.Level != float64(i) {
			t.Errorf("Expected entity %d to keep Level %d, got %v", e.ID, i, comp.Level)
		}
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := NewStore[component.PositionComponent]("Position")
	e1 := core.Entity{ID: 1, Version: 1}
	e2 := core.Entity{ID: 2, Version: 1}
	s.Set(e1, component.PositionComponent{})
	s.Set(e2, component.PositionComponent{})

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("Expected 2 entities, got %d", len(all))
	}

	// Mutating the returned slice must not corrupt the store
	all[0] = core.Entity{ID: 99, Version: 99}
	if !s.Has(e1) || !s.Has(e2) {
		t.Error("Expected store unaffected by mutation of All() result")
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore[component.IngredientComponent]("Ingredient")
	for i := 0; i < 3; i++ {
		s.Set(core.Entity{ID: uint32(i + 1), Version: 1}, component.IngredientComponent{Type: "carrot"})
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Expected empty store after Clear, got %d", s.Count())
	}
	if s.Has(core.Entity{ID: 1, Version: 1}) {
		t.Error("Expected no rows after Clear")
	}
}

func TestStore_DumpStateOrderedByID(t *testing.T) {
	s := NewStore[component.PositionComponent]("Position")
	// Insert out of order
	s.Set(core.Entity{ID: 3, Version: 1}, component.PositionComponent{X: 3})
	s.Set(core.Entity{ID: 1, Version: 1}, component.PositionComponent{X: 1})
	s.Set(core.Entity{ID: 2, Version: 1}, component.PositionComponent{X: 2})

	var order []uint32
	s.DumpState(func(e core.Entity, repr string) {
		order = append(order, e.ID)
		if repr == "" {
			t.Error("Expected non-empty repr")
		}
	})

	if len(order) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(order))
	}
	for i, id := range []uint32{1, 2, 3} {
		if order[i] != id {
			t.Errorf("Expected row %d to be entity %d, got %d", i, id, order[i])
		}
	}
}
