package repository

import (
	"context"

	"wardrobe-planner/internal/model"
)

// Repository is the backend access for the current user's profile,
// recommendations, wardrobe statistics and wear history.
type Repository interface {
	GetProfile(ctx context.Context) (*model.Profile, error)
	UpdateProfile(ctx context.Context, opt UpdateProfileOptions) (*model.Profile, error)
	Suggestions(ctx context.Context, opt SuggestionOptions) (*model.WardrobeSuggestions, error)
	Statistics(ctx context.Context) (*model.WardrobeStats, error)

	ListWearHistory(ctx context.Context, opt WearHistoryOptions) ([]model.WearEntry, error)
	DeleteWearEntry(ctx context.Context, id model.ID) error
	ItemWearFrequency(ctx context.Context) ([]model.ItemWearFrequency, error)
	CategoryUsage(ctx context.Context) ([]model.CategoryUsage, error)
}
