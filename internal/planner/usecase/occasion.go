package usecase

import (
	"context"
	"fmt"
	"strings"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/planner"
	"wardrobe-planner/internal/view"
	"wardrobe-planner/pkg/localstore"
)

func (uc *implUseCase) PlanOccasion(ctx context.Context, input planner.OccasionInput) (model.OccasionOutfit, error) {
	occasion := strings.TrimSpace(input.Occasion)
	if occasion == "" {
		return model.OccasionOutfit{}, planner.ErrMissingOccasion
	}
	o := input.Outfit
	if o.ID.IsZero() && len(o.ItemIDs) == 0 && len(o.Items) == 0 {
		return model.OccasionOutfit{}, planner.ErrMissingOutfit
	}

	event := input.Event
	if strings.TrimSpace(event.Date) != "" {
		d, err := uc.dates.Parse(event.Date, uc.now())
		if err != nil {
			return model.OccasionOutfit{}, fmt.Errorf("%w: %v", planner.ErrInvalidDate, err)
		}
		event.Date = uc.dates.Format(d)
	}

	entry, err := localstore.AppendAndSave(ctx, uc.store, localstore.KeyOccasionOutfits, model.OccasionOutfit{
		Occasion:     occasion,
		EventDetails: event,
		Outfit:       o.Clone(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PlanOccasion: %v", err)
		return model.OccasionOutfit{}, err
	}
	return entry, nil
}

func (uc *implUseCase) OccasionOutfits(ctx context.Context, occasion string) []model.OccasionOutfit {
	all := localstore.LoadList[model.OccasionOutfit](ctx, uc.store, localstore.KeyOccasionOutfits)
	if occasion == "" || occasion == view.All {
		return all
	}
	out := make([]model.OccasionOutfit, 0, len(all))
	for _, o := range all {
		if strings.EqualFold(o.Occasion, occasion) {
			out = append(out, o)
		}
	}
	return out
}

func (uc *implUseCase) DeleteOccasionOutfit(ctx context.Context, id string) error {
	n, err := localstore.RemoveFromList(ctx, uc.store, localstore.KeyOccasionOutfits, func(o model.OccasionOutfit) bool {
		return o.ID == id
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteOccasionOutfit: %v", err)
		return err
	}
	if n == 0 {
		return planner.ErrOccasionNotFound
	}
	return nil
}
