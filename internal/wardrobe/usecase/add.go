package usecase

import (
	"context"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe"
	"wardrobe-planner/internal/wardrobe/repository"
)

func (uc *implUseCase) Add(ctx context.Context, input wardrobe.AddItemInput) (model.WardrobeItem, error) {
	item := model.WardrobeItem{
		Name:      input.Name,
		Brand:     input.Brand,
		Category:  input.Category,
		Size:      input.Size,
		Price:     parsePrice(input.PriceText),
		Material:  input.Material,
		Season:    input.Season,
		ImageURL:  input.ImageURL,
		Tags:      model.SplitTags(input.TagsText),
		Color:     input.Color,
		Notes:     input.Notes,
		DateAdded: model.NewTime(uc.now().UTC()),
	}
	if err := validateItem(item); err != nil {
		return model.WardrobeItem{}, err
	}

	created, err := uc.repo.CreateItem(ctx, repository.CreateItemOptions{
		Item:  item,
		Image: imageOptions(input.Image),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add: %v", err)
		return model.WardrobeItem{}, err
	}

	// Prefer the backend's entity; fall back to the local placeholder.
	if created != nil && !created.ID.IsZero() {
		stored, err := uc.items.Insert(*created)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Add: insert %s: %v", created.ID, err)
			return model.WardrobeItem{}, err
		}
		return stored, nil
	}

	stored, err := uc.items.Insert(item)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add: insert placeholder: %v", err)
		return model.WardrobeItem{}, err
	}
	uc.markUnsynced(stored.GetID(), true)
	uc.l.Warnf(ctx, "uc.Add: backend returned no item, keeping placeholder %s", stored.ID)
	return stored, nil
}
