package usecase_test

import (
	"context"
	"time"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit/repository"
)

type mockRepo struct {
	outfits   []model.Outfit
	creates   []repository.CreateOutfitOptions
	updates   []repository.UpdateOutfitOptions
	feedbacks []repository.AddFeedbackOptions
	deletes   []model.ID
	wears     []model.ID
	err       error

	createFunc func(opt repository.CreateOutfitOptions) (*model.Outfit, error)
	updateFunc func(id model.ID, opt repository.UpdateOutfitOptions) (*model.Outfit, error)
}

func (m *mockRepo) ListOutfits(ctx context.Context) ([]model.Outfit, error) {
	return m.outfits, m.err
}

func (m *mockRepo) CreateOutfit(ctx context.Context, opt repository.CreateOutfitOptions) (*model.Outfit, error) {
	m.creates = append(m.creates, opt)
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return nil, m.err
}

func (m *mockRepo) UpdateOutfit(ctx context.Context, id model.ID, opt repository.UpdateOutfitOptions) (*model.Outfit, error) {
	m.updates = append(m.updates, opt)
	if m.updateFunc != nil {
		return m.updateFunc(id, opt)
	}
	return nil, m.err
}

func (m *mockRepo) DeleteOutfit(ctx context.Context, id model.ID) error {
	m.deletes = append(m.deletes, id)
	return m.err
}

func (m *mockRepo) LogWear(ctx context.Context, id model.ID, wornAt time.Time) (*model.WearEntry, error) {
	m.wears = append(m.wears, id)
	if m.err != nil {
		return nil, m.err
	}
	return &model.WearEntry{ID: "30", OutfitID: id, DateWorn: model.NewTime(wornAt)}, nil
}

func (m *mockRepo) ListFeedback(ctx context.Context, outfitID model.ID) ([]model.Feedback, error) {
	return []model.Feedback{{ID: "1", OutfitID: outfitID, Rating: 4}}, m.err
}

func (m *mockRepo) AddFeedback(ctx context.Context, outfitID model.ID, opt repository.AddFeedbackOptions) (*model.Feedback, error) {
	m.feedbacks = append(m.feedbacks, opt)
	if m.err != nil {
		return nil, m.err
	}
	return &model.Feedback{ID: "9", OutfitID: outfitID, Rating: opt.Rating, Comment: opt.Comment}, nil
}

func (m *mockRepo) DeleteFeedback(ctx context.Context, feedbackID model.ID) error {
	return m.err
}
