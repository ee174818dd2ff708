package rest

import (
	"context"
	"time"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit/repository"
	"wardrobe-planner/internal/wardrobeapi"
	pkgLog "wardrobe-planner/pkg/log"
)

type implRepository struct {
	client *wardrobeapi.Client
	l      pkgLog.Logger
}

// New creates the REST-backed outfit repository.
func New(client *wardrobeapi.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) ListOutfits(ctx context.Context) ([]model.Outfit, error) {
	outfits, err := r.client.ListOutfits(ctx)
	if err != nil {
		r.l.Errorf(ctx, "outfit rest repository: failed to list outfits: %v", err)
		return nil, err
	}
	return outfits, nil
}

func (r *implRepository) CreateOutfit(ctx context.Context, opt repository.CreateOutfitOptions) (*model.Outfit, error) {
	o, err := r.client.CreateOutfit(ctx, wardrobeapi.OutfitCreate{
		Name:     opt.Name,
		ItemIDs:  opt.ItemIDs,
		Tags:     opt.Tags,
		ImageURL: opt.ImageURL,
	})
	if err != nil {
		r.l.Errorf(ctx, "outfit rest repository: failed to create outfit: %v", err)
		return nil, err
	}
	return o, nil
}

func (r *implRepository) UpdateOutfit(ctx context.Context, id model.ID, opt repository.UpdateOutfitOptions) (*model.Outfit, error) {
	o, err := r.client.UpdateOutfit(ctx, id, wardrobeapi.OutfitUpdate{
		Name:     opt.Name,
		ItemIDs:  opt.ItemIDs,
		Tags:     opt.Tags,
		ImageURL: opt.ImageURL,
	})
	if err != nil {
		r.l.Errorf(ctx, "outfit rest repository: failed to update outfit %s: %v", id, err)
		return nil, err
	}
	return o, nil
}

func (r *implRepository) DeleteOutfit(ctx context.Context, id model.ID) error {
	if err := r.client.DeleteOutfit(ctx, id); err != nil {
		r.l.Errorf(ctx, "outfit rest repository: failed to delete outfit %s: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) LogWear(ctx context.Context, id model.ID, wornAt time.Time) (*model.WearEntry, error) {
	e, err := r.client.LogWear(ctx, wardrobeapi.WearCreate{OutfitID: id, DateWorn: model.NewTime(wornAt.UTC())})
	if err != nil {
		r.l.Errorf(ctx, "outfit rest repository: failed to log wear of outfit %s: %v", id, err)
		return nil, err
	}
	return e, nil
}
