package outfit

import (
	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/view"
	"wardrobe-planner/pkg/collection"
)

// OutfitCollection is the in-memory outfit list.
type OutfitCollection = collection.Holder[model.Outfit, *model.Outfit]

// CreateInput is a finished builder selection plus organiser metadata.
type CreateInput struct {
	Name     string
	ItemIDs  []model.ID
	TagsText string
	ImageURL string
	Category string
	Season   string
	Occasion string
	Notes    string
}

// UpdateInput changes only the non-nil fields.
type UpdateInput struct {
	ID       model.ID
	Name     *string
	ItemIDs  *[]model.ID
	TagsText *string
	ImageURL *string
	Category *string
	Season   *string
	Occasion *string
	Notes    *string
}

// SaveInput is an outfit kept only in local storage.
type SaveInput struct {
	Name  string
	Items []model.WardrobeItem
}

type ListInput struct {
	Query   view.OutfitQuery
	Refresh bool
}

type ListOutput struct {
	Outfits    []model.Outfit
	Categories []string
	Occasions  []string
	Total      int
}

type FeedbackInput struct {
	OutfitID model.ID
	Rating   int
	Comment  string
}
