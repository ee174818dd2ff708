package usecase

import (
	"context"
	"errors"
	"time"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe"
	"wardrobe-planner/internal/wardrobe/repository"
	"wardrobe-planner/pkg/collection"
)

// MarkWorn logs the wear, then refetches the item because the backend bumps
// times_worn and last_worn as a side effect. When the refetch yields nothing
// the same bump is applied locally. Items that only exist locally are counted
// locally.
func (uc *implUseCase) MarkWorn(ctx context.Context, input wardrobe.WearInput) (model.WardrobeItem, error) {
	key := string(input.ID)
	if _, ok := uc.items.Get(key); !ok {
		return model.WardrobeItem{}, wardrobe.ErrItemNotFound
	}

	wornAt := input.WornAt
	if wornAt.IsZero() {
		wornAt = uc.now()
	}
	wornAt = wornAt.UTC()

	if uc.isUnsynced(key) {
		uc.l.Warnf(ctx, "uc.MarkWorn: item %s exists only locally, not syncing", key)
		return uc.bumpWorn(key, wornAt)
	}

	ticket := uc.seq.Begin(key)
	defer uc.seq.Done(ticket)

	if _, err := uc.repo.LogWear(ctx, input.ID, repository.LogWearOptions{WornAt: wornAt, Notes: input.Notes}); err != nil {
		uc.l.Errorf(ctx, "uc.MarkWorn: %v", err)
		return model.WardrobeItem{}, err
	}

	updated, err := uc.repo.GetItem(ctx, input.ID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.MarkWorn: wear logged but refetch of %s failed: %v", key, err)
		updated = nil
	}
	if !uc.seq.Current(ticket) {
		uc.l.Warnf(ctx, "uc.MarkWorn: discarding stale response for item %s", key)
		return model.WardrobeItem{}, wardrobe.ErrStaleResponse
	}

	if updated != nil && !updated.ID.IsZero() {
		return uc.reconcile(ctx, key, *updated)
	}
	return uc.bumpWorn(key, wornAt)
}

func (uc *implUseCase) bumpWorn(key string, wornAt time.Time) (model.WardrobeItem, error) {
	item, err := uc.items.Patch(key, func(it *model.WardrobeItem) {
		it.TimesWorn++
		it.LastWorn = model.NewTime(wornAt)
	})
	if errors.Is(err, collection.ErrNotFound) {
		return model.WardrobeItem{}, wardrobe.ErrItemNotFound
	}
	return item, err
}
