package usecase

import (
	"context"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
	"wardrobe-planner/pkg/localstore"
)

func (uc *implUseCase) Save(ctx context.Context, input outfit.SaveInput) (model.SavedOutfit, error) {
	if err := outfit.Validate(input.Name, len(input.Items)); err != nil {
		return model.SavedOutfit{}, err
	}

	items := make([]model.WardrobeItem, len(input.Items))
	for i := range input.Items {
		items[i] = input.Items[i].Clone()
	}

	saved, err := localstore.AppendAndSave(ctx, uc.store, localstore.KeySavedOutfits, model.SavedOutfit{
		Name:  input.Name,
		Items: items,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save: %v", err)
		return model.SavedOutfit{}, err
	}
	return saved, nil
}

func (uc *implUseCase) Saved(ctx context.Context) []model.SavedOutfit {
	return localstore.LoadList[model.SavedOutfit](ctx, uc.store, localstore.KeySavedOutfits)
}

func (uc *implUseCase) DeleteSaved(ctx context.Context, id string) error {
	n, err := localstore.RemoveFromList(ctx, uc.store, localstore.KeySavedOutfits, func(s model.SavedOutfit) bool {
		return s.ID == id
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSaved: %v", err)
		return err
	}
	if n == 0 {
		return outfit.ErrSavedNotFound
	}
	return nil
}
