package wardrobe

import (
	"time"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/view"
	"wardrobe-planner/pkg/collection"
)

// ItemCollection is the in-memory wardrobe.
type ItemCollection = collection.Holder[model.WardrobeItem, *model.WardrobeItem]

// ImageInput is a photo picked by the user.
type ImageInput struct {
	Filename string
	Data     []byte
}

// AddItemInput carries the add-item form as typed by the user. Price and tags
// are raw text: price parses like a number prefix (bad input becomes 0) and
// tags are comma separated.
type AddItemInput struct {
	Name      string
	Brand     string
	Category  string
	Size      string
	PriceText string
	Material  string
	Season    string
	ImageURL  string
	TagsText  string
	Color     string
	Notes     string
	Image     *ImageInput
}

// EditItemInput changes only the non-nil fields of an existing item.
type EditItemInput struct {
	ID        model.ID
	Name      *string
	Brand     *string
	Category  *string
	Size      *string
	PriceText *string
	Material  *string
	Season    *string
	ImageURL  *string
	TagsText  *string
	Color     *string
	Notes     *string
	Image     *ImageInput
}

// ListInput selects and orders the visible items.
type ListInput struct {
	Query   view.ItemQuery
	Refresh bool // reload from the backend first
}

// ListOutput is the derived view plus the filter choices that go with it.
type ListOutput struct {
	Items      []model.WardrobeItem
	Categories []string
	Total      int
}

// WearInput logs that an item was worn. A zero WornAt means now.
type WearInput struct {
	ID     model.ID
	WornAt time.Time
	Notes  string
}
