package account

import (
	"context"

	"wardrobe-planner/internal/model"
)

// UseCase defines the business logic interface for the account domain.
type UseCase interface {
	// Profile returns the current user's profile, cached after the first
	// successful fetch.
	Profile(ctx context.Context) (model.Profile, error)

	// UpdateProfile sends the changed fields as JSON.
	UpdateProfile(ctx context.Context, input ProfileInput) (model.Profile, error)

	Suggestions(ctx context.Context, input SuggestInput) (model.WardrobeSuggestions, error)

	// Statistics asks the backend for a summary and falls back to computing
	// one from the local collections when the endpoint is missing.
	Statistics(ctx context.Context) (model.WardrobeStats, error)

	// WearHistory lists logged wears, newest last.
	WearHistory(ctx context.Context, filter WearFilter) ([]model.WearEntry, error)
	DeleteWearEntry(ctx context.Context, id model.ID) error

	// WearFrequency and CategoryUsage fall back to the local items like
	// Statistics does.
	WearFrequency(ctx context.Context) ([]model.ItemWearFrequency, error)
	CategoryUsage(ctx context.Context) ([]model.CategoryUsage, error)
}
