package repository

import "wardrobe-planner/internal/model"

// UpdateProfileOptions holds the profile fields to change.
type UpdateProfileOptions struct {
	FullName         *string
	Gender           *string
	Location         *string
	BodyType         *string
	StylePreferences *[]string
	FavoriteColors   *[]string
	Bio              *string
}

// SuggestionOptions optionally carries coordinates.
type SuggestionOptions struct {
	Lat *float64
	Lon *float64
}

// WearHistoryOptions filters and pages the wear history.
type WearHistoryOptions struct {
	ItemID   model.ID
	OutfitID model.ID
	Skip     int
	Limit    int
}
