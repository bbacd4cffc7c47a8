package engine

import (
	"testing"

	"github.com/skilletworks/lunchrush/component"
	"github.com/skilletworks/lunchrush/core"
)

// TestQueryBuilder verifies that the QueryBuilder compiles and works correctly
func TestQueryBuilder(t *testing.T) {
	w := NewWorld()

	// Create some test entities
	e1 := w.CreateEntity()
	w.Components.Position.Set(e1, component.PositionComponent{X: 1, Y: 1})
	w.Components.Sharpness.Set(e1, component.SharpnessComponent{Level: 0.5, MaxLevel: 1.0})

	e2 := w.CreateEntity()
	w.Components.Position.Set(e2, component.PositionComponent{X: 2, Y: 2})

	e3 := w.CreateEntity()
	w.Components.Sharpness.Set(e3, component.SharpnessComponent{Level: 0.8, MaxLevel: 1.0})

	// Test query with both components
	results := w.Query().
		With(w.Components.Position).
		With(w.Components.Sharpness).
		Execute()

	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}

	if len(results) > 0 && results[0] != e1 {
		t.Errorf("Expected entity %v, got %v", e1, results[0])
	}

	// Test query with single component
	posResults := w.Query().
		With(w.Components.Position).
		Execute()

	if len(posResults) != 2 {
		t.Errorf("Expected 2 position results, got %d", len(posResults))
	}

	// Test empty query
	emptyResults := w.Query().Execute()
	if len(emptyResults) != 0 {
		t.Errorf("Expected 0 empty results, got %d", len(emptyResults))
	}

	// Test query reexecution
	q := w.Query().With(w.Components.Position)
	first := q.Execute()
	second := q.Execute()
	if len(first) != len(second) {
		t.Errorf("Expected cached results, got %d then %d", len(first), len(second))
	}
}

// TestQueryBuilder_Panic verifies panic behavior
func TestQueryBuilder_Panic(t *testing.T) {
	w := NewWorld()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when modifying executed query")
		}
	}()

	q := w.Query()
	q.Execute()
	q.With(w.Components.Position) // Should panic
}

// TestQueryBuilder_Each verifies iteration over the query snapshot
func TestQueryBuilder_Each(t *testing.T) {
	w := NewWorld()

	for i := 0; i < 3; i++ {
		e := w.CreateEntity()
		w.Components.Position.Set(e, component.PositionComponent{X: float64(i)})
	}

	count := 0
	w.Query().With(w.Components.Position).Each(func(e core.Entity) {
		count++
	})

	if count != 3 {
		t.Errorf("Expected 3 iterations, got %d", count)
	}
}
