package outfit_test

import (
	"errors"
	"testing"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
)

func TestBuilder(t *testing.T) {
	items := []model.WardrobeItem{
		{ID: "1", Name: "Tee", Category: "Shirts"},
		{ID: "2", Name: "Jeans", Category: "Pants"},
		{ID: "3", Name: "Sneakers", Category: "Shoes"},
	}

	b := outfit.NewBuilder()
	if err := b.Validate(); !errors.Is(err, outfit.ErrMissingName) {
		t.Errorf("expected ErrMissingName, got %v", err)
	}

	b.Name = "Weekend"
	if err := b.Validate(); !errors.Is(err, outfit.ErrNoItems) {
		t.Errorf("expected ErrNoItems, got %v", err)
	}

	if !b.Toggle(items[1]) || !b.Toggle(items[0]) || !b.Toggle(items[2]) {
		t.Fatal("expected items to be selected")
	}
	if b.Toggle(items[0]) {
		t.Error("second toggle should deselect")
	}
	ids := b.ItemIDs()
	if len(ids) != 2 || ids[0] != "2" || ids[1] != "3" {
		t.Errorf("expected selection order [2 3], got %v", ids)
	}
	if b.IsSelected("1") || !b.IsSelected("3") {
		t.Error("unexpected selection state")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	b.Category = "Shirts"
	if vis := b.Visible(items); len(vis) != 1 || vis[0].ID != "1" {
		t.Errorf("unexpected visible items: %+v", vis)
	}
	b.Category = "all"
	if vis := b.Visible(items); len(vis) != 3 {
		t.Errorf("expected all items visible, got %d", len(vis))
	}

	in := b.SaveInput()
	if in.Name != "Weekend" || len(in.Items) != 2 {
		t.Errorf("unexpected save input: %+v", in)
	}

	b.Reset()
	if len(b.Selected()) != 0 || b.Name != "" {
		t.Error("expected empty builder after reset")
	}
}
