package account

import "wardrobe-planner/internal/model"

// ProfileInput changes only the non-nil fields.
type ProfileInput struct {
	FullName         *string
	Gender           *string
	Location         *string
	BodyType         *string
	StylePreferences *[]string
	FavoriteColors   *[]string
	Bio              *string
}

// Empty reports whether input changes nothing.
func (input ProfileInput) Empty() bool {
	return input == ProfileInput{}
}

// SuggestInput optionally narrows suggestions to a location.
type SuggestInput struct {
	Lat *float64
	Lon *float64
}

// WearFilter narrows the wear history. Zero fields match everything.
type WearFilter struct {
	ItemID   model.ID
	OutfitID model.ID
	Skip     int
	Limit    int
}

// ItemSource exposes the locally held items, used when the backend has no
// statistics endpoint.
type ItemSource interface {
	Items() []model.WardrobeItem
}

// OutfitCounter reports how many outfits are held locally.
type OutfitCounter interface {
	Len() int
}
