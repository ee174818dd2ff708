package repository

import (
	"context"
	"time"

	"wardrobe-planner/internal/model"
)

// Repository is the backend access for outfits and their community feedback.
// A nil entity with a nil error means the backend returned no body.
type Repository interface {
	ListOutfits(ctx context.Context) ([]model.Outfit, error)
	CreateOutfit(ctx context.Context, opt CreateOutfitOptions) (*model.Outfit, error)
	UpdateOutfit(ctx context.Context, id model.ID, opt UpdateOutfitOptions) (*model.Outfit, error)
	DeleteOutfit(ctx context.Context, id model.ID) error
	LogWear(ctx context.Context, id model.ID, wornAt time.Time) (*model.WearEntry, error)

	ListFeedback(ctx context.Context, outfitID model.ID) ([]model.Feedback, error)
	AddFeedback(ctx context.Context, outfitID model.ID, opt AddFeedbackOptions) (*model.Feedback, error)
	DeleteFeedback(ctx context.Context, feedbackID model.ID) error
}
