package repository

import "wardrobe-planner/internal/model"

// CreateOutfitOptions holds the backend fields of a new outfit.
type CreateOutfitOptions struct {
	Name     string
	ItemIDs  []model.ID
	Tags     []string
	ImageURL string
}

// UpdateOutfitOptions changes only the non-nil fields.
type UpdateOutfitOptions struct {
	Name     *string
	ItemIDs  *[]model.ID
	Tags     *[]string
	ImageURL *string
}

func (o UpdateOutfitOptions) Empty() bool {
	return o.Name == nil && o.ItemIDs == nil && o.Tags == nil && o.ImageURL == nil
}

type AddFeedbackOptions struct {
	Rating  int
	Comment string
}
