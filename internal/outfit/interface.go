package outfit

import (
	"context"

	"wardrobe-planner/internal/model"
)

// UseCase defines the business logic interface for the outfit domain.
type UseCase interface {
	// Create validates and posts a backend outfit.
	Create(ctx context.Context, input CreateInput) (model.Outfit, error)
	Update(ctx context.Context, input UpdateInput) (model.Outfit, error)
	Delete(ctx context.Context, id model.ID) error

	// Organiser metadata; kept client-side only.
	ToggleFavorite(ctx context.Context, id model.ID) (model.Outfit, error)
	Rate(ctx context.Context, id model.ID, rating int) (model.Outfit, error)
	MarkWorn(ctx context.Context, id model.ID) (model.Outfit, error)

	Refresh(ctx context.Context) error
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Save keeps an outfit in local storage only.
	Save(ctx context.Context, input SaveInput) (model.SavedOutfit, error)
	Saved(ctx context.Context) []model.SavedOutfit
	DeleteSaved(ctx context.Context, id string) error

	Feedback(ctx context.Context, outfitID model.ID) ([]model.Feedback, error)
	AddFeedback(ctx context.Context, input FeedbackInput) (model.Feedback, error)
	DeleteFeedback(ctx context.Context, feedbackID model.ID) error

	Outfits() *OutfitCollection
}
