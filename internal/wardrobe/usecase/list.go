package usecase

import (
	"context"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/view"
	"wardrobe-planner/internal/wardrobe"
)

func (uc *implUseCase) Refresh(ctx context.Context) error {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh: %v", err)
		return err
	}
	if err := uc.items.Reset(items); err != nil {
		uc.l.Errorf(ctx, "uc.Refresh: %v", err)
		return err
	}

	uc.mu.Lock()
	uc.unsynced = map[string]bool{}
	uc.mu.Unlock()

	uc.l.Debugf(ctx, "uc.Refresh: loaded %d items", len(items))
	return nil
}

func (uc *implUseCase) List(ctx context.Context, input wardrobe.ListInput) (wardrobe.ListOutput, error) {
	if input.Refresh {
		if err := uc.Refresh(ctx); err != nil {
			return wardrobe.ListOutput{}, err
		}
	}

	all := uc.items.Items()
	return wardrobe.ListOutput{
		Items:      view.Items(all, input.Query),
		Categories: view.Categories(all),
		Total:      len(all),
	}, nil
}

func (uc *implUseCase) Get(ctx context.Context, id model.ID) (model.WardrobeItem, error) {
	if item, ok := uc.items.Get(string(id)); ok {
		return item, nil
	}

	item, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		return model.WardrobeItem{}, err
	}
	if item == nil {
		return model.WardrobeItem{}, wardrobe.ErrItemNotFound
	}
	return *item, nil
}
