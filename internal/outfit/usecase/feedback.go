package usecase

import (
	"context"
	"strings"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
	"wardrobe-planner/internal/outfit/repository"
)

func (uc *implUseCase) Feedback(ctx context.Context, outfitID model.ID) ([]model.Feedback, error) {
	list, err := uc.repo.ListFeedback(ctx, outfitID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Feedback: %v", err)
		return nil, err
	}
	return list, nil
}

func (uc *implUseCase) AddFeedback(ctx context.Context, input outfit.FeedbackInput) (model.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return model.Feedback{}, outfit.ErrInvalidRating
	}

	fb, err := uc.repo.AddFeedback(ctx, input.OutfitID, repository.AddFeedbackOptions{
		Rating:  input.Rating,
		Comment: strings.TrimSpace(input.Comment),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddFeedback: %v", err)
		return model.Feedback{}, err
	}
	if fb == nil {
		return model.Feedback{
			OutfitID:  input.OutfitID,
			Rating:    input.Rating,
			Comment:   strings.TrimSpace(input.Comment),
			CreatedAt: model.NewTime(uc.now().UTC()),
		}, nil
	}
	return *fb, nil
}

func (uc *implUseCase) DeleteFeedback(ctx context.Context, feedbackID model.ID) error {
	if err := uc.repo.DeleteFeedback(ctx, feedbackID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteFeedback: %v", err)
		return err
	}
	return nil
}
