package usecase

import (
	"context"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe"
	"wardrobe-planner/pkg/apiclient"
)

func (uc *implUseCase) Delete(ctx context.Context, id model.ID) error {
	key := string(id)
	if _, ok := uc.items.Get(key); !ok {
		return wardrobe.ErrItemNotFound
	}

	if !uc.isUnsynced(key) {
		ticket := uc.seq.Begin(key)
		defer uc.seq.Done(ticket)

		// Already gone on the backend is as good as deleted.
		if err := uc.repo.DeleteItem(ctx, id); err != nil && !apiclient.IsNotFound(err) {
			uc.l.Errorf(ctx, "uc.Delete: %v", err)
			return err
		}
	}

	if err := uc.items.Remove(key); err != nil {
		return wardrobe.ErrItemNotFound
	}
	uc.markUnsynced(key, false)
	return nil
}
