package repository

import (
	"context"

	"wardrobe-planner/internal/model"
)

// Repository is the backend access for wardrobe items. A nil item with a nil
// error means the backend accepted the request but returned no entity.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (*model.WardrobeItem, error)
	UpdateItem(ctx context.Context, id model.ID, opt UpdateItemOptions) (*model.WardrobeItem, error)
	GetItem(ctx context.Context, id model.ID) (*model.WardrobeItem, error)
	ListItems(ctx context.Context) ([]model.WardrobeItem, error)
	DeleteItem(ctx context.Context, id model.ID) error
	LogWear(ctx context.Context, id model.ID, opt LogWearOptions) (*model.WearEntry, error)
}
