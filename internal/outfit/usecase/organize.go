package usecase

import (
	"context"
	"errors"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
	"wardrobe-planner/pkg/collection"
)

func (uc *implUseCase) ToggleFavorite(ctx context.Context, id model.ID) (model.Outfit, error) {
	o, err := uc.outfits.Toggle(string(id), func(o *model.Outfit) *bool { return &o.Favorite })
	return o, notFound(err)
}

// Rate sets the organiser rating. 0 clears it.
func (uc *implUseCase) Rate(ctx context.Context, id model.ID, rating int) (model.Outfit, error) {
	if rating < 0 || rating > 5 {
		return model.Outfit{}, outfit.ErrInvalidRating
	}
	o, err := uc.outfits.Patch(string(id), func(o *model.Outfit) { o.Rating = rating })
	return o, notFound(err)
}

// MarkWorn logs the wear in the backend history, then counts it locally. The
// backend keeps no counters on outfits.
func (uc *implUseCase) MarkWorn(ctx context.Context, id model.ID) (model.Outfit, error) {
	key := string(id)
	if _, ok := uc.outfits.Get(key); !ok {
		return model.Outfit{}, outfit.ErrOutfitNotFound
	}
	wornAt := uc.now().UTC()
	if !uc.isUnsynced(key) {
		if _, err := uc.repo.LogWear(ctx, id, wornAt); err != nil {
			uc.l.Errorf(ctx, "uc.MarkWorn: %v", err)
			return model.Outfit{}, err
		}
	}

	now := model.NewTime(wornAt)
	o, err := uc.outfits.Patch(key, func(o *model.Outfit) {
		o.TimesWorn++
		o.LastWorn = now
	})
	return o, notFound(err)
}

func notFound(err error) error {
	if errors.Is(err, collection.ErrNotFound) {
		return outfit.ErrOutfitNotFound
	}
	return err
}
