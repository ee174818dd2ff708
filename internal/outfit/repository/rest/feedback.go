package rest

import (
	"context"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit/repository"
	"wardrobe-planner/internal/wardrobeapi"
)

func (r *implRepository) ListFeedback(ctx context.Context, outfitID model.ID) ([]model.Feedback, error) {
	return r.client.ListFeedback(ctx, outfitID)
}

func (r *implRepository) AddFeedback(ctx context.Context, outfitID model.ID, opt repository.AddFeedbackOptions) (*model.Feedback, error) {
	fb, err := r.client.AddFeedback(ctx, outfitID, wardrobeapi.FeedbackCreate{Rating: opt.Rating, Comment: opt.Comment})
	if err != nil {
		r.l.Errorf(ctx, "outfit rest repository: failed to add feedback to %s: %v", outfitID, err)
		return nil, err
	}
	return fb, nil
}

func (r *implRepository) DeleteFeedback(ctx context.Context, feedbackID model.ID) error {
	return r.client.DeleteFeedback(ctx, feedbackID)
}
