package usecase

import (
	"context"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe"
	"wardrobe-planner/internal/wardrobe/repository"
)

func (uc *implUseCase) Edit(ctx context.Context, input wardrobe.EditItemInput) (model.WardrobeItem, error) {
	id := string(input.ID)
	current, ok := uc.items.Get(id)
	if !ok {
		return model.WardrobeItem{}, wardrobe.ErrItemNotFound
	}

	changes := model.ItemChanges{
		Name:     input.Name,
		Brand:    input.Brand,
		Category: input.Category,
		Size:     input.Size,
		Material: input.Material,
		Season:   input.Season,
		ImageURL: input.ImageURL,
		Color:    input.Color,
		Notes:    input.Notes,
	}
	if input.PriceText != nil {
		p := parsePrice(*input.PriceText)
		changes.Price = &p
	}
	if input.TagsText != nil {
		tags := model.SplitTags(*input.TagsText)
		changes.Tags = &tags
	}
	img := imageOptions(input.Image)
	if changes.Empty() && img == nil {
		return model.WardrobeItem{}, wardrobe.ErrNothingToUpdate
	}

	merged := current.Clone()
	changes.Apply(&merged)
	if err := validateItem(merged); err != nil {
		return model.WardrobeItem{}, err
	}

	if uc.isUnsynced(id) {
		uc.l.Warnf(ctx, "uc.Edit: item %s exists only locally, not syncing", id)
		return uc.items.Patch(id, changes.Apply)
	}

	ticket := uc.seq.Begin(id)
	defer uc.seq.Done(ticket)

	updated, err := uc.repo.UpdateItem(ctx, input.ID, repository.UpdateItemOptions{Changes: changes, Image: img})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Edit: %v", err)
		return model.WardrobeItem{}, err
	}
	if !uc.seq.Current(ticket) {
		uc.l.Warnf(ctx, "uc.Edit: discarding stale response for item %s", id)
		return model.WardrobeItem{}, wardrobe.ErrStaleResponse
	}

	if updated != nil && !updated.ID.IsZero() {
		return uc.reconcile(ctx, id, *updated)
	}
	return uc.items.Patch(id, changes.Apply)
}

// reconcile swaps the local copy for the backend's entity.
func (uc *implUseCase) reconcile(ctx context.Context, id string, authoritative model.WardrobeItem) (model.WardrobeItem, error) {
	stored, err := uc.items.Replace(id, authoritative)
	if err != nil {
		uc.l.Errorf(ctx, "uc.reconcile: %s: %v", id, err)
		return model.WardrobeItem{}, err
	}
	if newID := stored.GetID(); newID != id {
		uc.seq.Rekey(id, newID)
		uc.markUnsynced(id, false)
	}
	return stored, nil
}
