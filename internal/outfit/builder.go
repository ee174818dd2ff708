package outfit

import (
	"strings"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/view"
)

// Builder tracks the items picked while composing an outfit. Selection
// order is kept. It is owned by a single caller and is not safe for
// concurrent use.
type Builder struct {
	Name     string
	Category string // filter for Visible; "" or "all" shows everything

	selected []model.WardrobeItem
}

func NewBuilder() *Builder {
	return &Builder{Category: view.All}
}

// Toggle adds item to the selection, or removes it when already selected.
// It reports whether item is selected afterwards.
func (b *Builder) Toggle(item model.WardrobeItem) bool {
	for i := range b.selected {
		if b.selected[i].ID == item.ID {
			b.selected = append(b.selected[:i], b.selected[i+1:]...)
			return false
		}
	}
	b.selected = append(b.selected, item.Clone())
	return true
}

func (b *Builder) IsSelected(id model.ID) bool {
	for i := range b.selected {
		if b.selected[i].ID == id {
			return true
		}
	}
	return false
}

func (b *Builder) Selected() []model.WardrobeItem {
	out := make([]model.WardrobeItem, len(b.selected))
	for i := range b.selected {
		out[i] = b.selected[i].Clone()
	}
	return out
}

func (b *Builder) ItemIDs() []model.ID {
	ids := make([]model.ID, len(b.selected))
	for i := range b.selected {
		ids[i] = b.selected[i].ID
	}
	return ids
}

// Visible returns the items matching the builder's category filter.
func (b *Builder) Visible(items []model.WardrobeItem) []model.WardrobeItem {
	return view.Items(items, view.ItemQuery{Category: b.Category})
}

// Validate checks the builder can be saved.
func (b *Builder) Validate() error {
	return Validate(b.Name, len(b.selected))
}

// SaveInput converts the selection into a local saved outfit.
func (b *Builder) SaveInput() SaveInput {
	return SaveInput{Name: b.Name, Items: b.Selected()}
}

// CreateInput converts the selection into a backend outfit.
func (b *Builder) CreateInput() CreateInput {
	return CreateInput{Name: b.Name, ItemIDs: b.ItemIDs()}
}

func (b *Builder) Reset() {
	b.Name = ""
	b.Category = view.All
	b.selected = nil
}

// Validate checks that an outfit has a name and at least one item.
func Validate(name string, items int) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingName
	}
	if items == 0 {
		return ErrNoItems
	}
	return nil
}
