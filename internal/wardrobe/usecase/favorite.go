package usecase

import (
	"context"
	"errors"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe"
	"wardrobe-planner/internal/wardrobe/repository"
	"wardrobe-planner/pkg/collection"
)

func favoriteField(i *model.WardrobeItem) *bool { return &i.Favorite }

// ToggleFavorite flips the flag locally first so it shows immediately, then
// syncs it. A failed sync reverts the flip unless a newer toggle followed.
func (uc *implUseCase) ToggleFavorite(ctx context.Context, id model.ID) (model.WardrobeItem, error) {
	key := string(id)
	toggled, err := uc.items.Toggle(key, favoriteField)
	if errors.Is(err, collection.ErrNotFound) {
		return model.WardrobeItem{}, wardrobe.ErrItemNotFound
	}
	if err != nil {
		return model.WardrobeItem{}, err
	}
	if uc.isUnsynced(key) {
		return toggled, nil
	}

	ticket := uc.seq.Begin(key)
	defer uc.seq.Done(ticket)

	fav := toggled.Favorite
	updated, err := uc.repo.UpdateItem(ctx, id, repository.UpdateItemOptions{
		Changes: model.ItemChanges{Favorite: &fav},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleFavorite: %v", err)
		if uc.seq.Current(ticket) {
			if _, rerr := uc.items.Toggle(key, favoriteField); rerr != nil {
				uc.l.Errorf(ctx, "uc.ToggleFavorite: revert %s: %v", key, rerr)
			}
		}
		return model.WardrobeItem{}, err
	}
	if !uc.seq.Current(ticket) {
		return model.WardrobeItem{}, wardrobe.ErrStaleResponse
	}

	if updated != nil && !updated.ID.IsZero() {
		return uc.reconcile(ctx, key, *updated)
	}
	return toggled, nil
}
