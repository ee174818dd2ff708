package idgen_test

import (
	"testing"

	"wardrobe-planner/pkg/idgen"
)

func TestTimeOrderedMonotonic(t *testing.T) {
	gen := idgen.TimeOrdered{}
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 2000; i++ {
		id := gen.Next()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
		if prev != "" && id <= prev {
			t.Fatalf("ids not monotonic: %s after %s", id, prev)
		}
		prev = id
	}
}

func TestSequence(t *testing.T) {
	s := &idgen.Sequence{Prefix: "item"}
	if got := s.Next(); got != "item-1" {
		t.Errorf("expected item-1, got %s", got)
	}
	if got := s.Next(); got != "item-2" {
		t.Errorf("expected item-2, got %s", got)
	}
}

func TestNew(t *testing.T) {
	if idgen.New() == idgen.New() {
		t.Error("expected distinct ids")
	}
}
