package usecase

import (
	"context"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
	"wardrobe-planner/internal/view"
)

// Refresh reloads backend outfits, keeping organiser fields already known
// for the same ids.
func (uc *implUseCase) Refresh(ctx context.Context) error {
	outfits, err := uc.repo.ListOutfits(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh: %v", err)
		return err
	}

	merged := make([]model.Outfit, len(outfits))
	for i, o := range outfits {
		if local, ok := uc.outfits.Get(string(o.ID)); ok {
			o = withOrganizer(o, local)
		}
		merged[i] = o
	}
	if err := uc.outfits.Reset(merged); err != nil {
		uc.l.Errorf(ctx, "uc.Refresh: %v", err)
		return err
	}

	uc.mu.Lock()
	uc.unsynced = map[string]bool{}
	uc.mu.Unlock()
	return nil
}

func (uc *implUseCase) List(ctx context.Context, input outfit.ListInput) (outfit.ListOutput, error) {
	if input.Refresh {
		if err := uc.Refresh(ctx); err != nil {
			return outfit.ListOutput{}, err
		}
	}

	all := uc.outfits.Items()
	return outfit.ListOutput{
		Outfits:    view.Outfits(all, input.Query),
		Categories: view.OutfitCategories(all),
		Occasions:  view.Occasions(all),
		Total:      len(all),
	}, nil
}
