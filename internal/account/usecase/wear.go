package usecase

import (
	"cmp"
	"context"
	"math"
	"slices"

	"wardrobe-planner/internal/account"
	"wardrobe-planner/internal/account/repository"
	"wardrobe-planner/internal/model"
	"wardrobe-planner/pkg/apiclient"
)

func (uc *implUseCase) WearHistory(ctx context.Context, filter account.WearFilter) ([]model.WearEntry, error) {
	if filter.Skip < 0 || filter.Limit < 0 {
		return nil, account.ErrInvalidPage
	}
	list, err := uc.repo.ListWearHistory(ctx, repository.WearHistoryOptions{
		ItemID:   filter.ItemID,
		OutfitID: filter.OutfitID,
		Skip:     filter.Skip,
		Limit:    filter.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.WearHistory: %v", err)
		return nil, err
	}
	return list, nil
}

// DeleteWearEntry removes the entry only. The item's counters are not rolled
// back, matching the backend.
func (uc *implUseCase) DeleteWearEntry(ctx context.Context, id model.ID) error {
	err := uc.repo.DeleteWearEntry(ctx, id)
	if apiclient.IsNotFound(err) {
		return account.ErrWearNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteWearEntry: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) WearFrequency(ctx context.Context) ([]model.ItemWearFrequency, error) {
	list, err := uc.repo.ItemWearFrequency(ctx)
	switch {
	case err == nil:
		return list, nil
	case apiclient.IsNotFound(err):
		if uc.items == nil {
			return nil, account.ErrStatsUnavailable
		}
		uc.l.Infof(ctx, "uc.WearFrequency: computing locally")
		return wearFrequency(uc.items.Items()), nil
	default:
		uc.l.Errorf(ctx, "uc.WearFrequency: %v", err)
		return nil, err
	}
}

func (uc *implUseCase) CategoryUsage(ctx context.Context) ([]model.CategoryUsage, error) {
	list, err := uc.repo.CategoryUsage(ctx)
	switch {
	case err == nil:
		return list, nil
	case apiclient.IsNotFound(err):
		if uc.items == nil {
			return nil, account.ErrStatsUnavailable
		}
		uc.l.Infof(ctx, "uc.CategoryUsage: computing locally")
		return categoryUsage(uc.items.Items()), nil
	default:
		uc.l.Errorf(ctx, "uc.CategoryUsage: %v", err)
		return nil, err
	}
}

// wearFrequency lists every item, most worn first.
func wearFrequency(items []model.WardrobeItem) []model.ItemWearFrequency {
	out := make([]model.ItemWearFrequency, 0, len(items))
	for _, it := range items {
		out = append(out, model.ItemWearFrequency{Item: it, WearCount: it.TimesWorn})
	}
	slices.SortStableFunc(out, func(a, b model.ItemWearFrequency) int {
		return cmp.Compare(b.WearCount, a.WearCount)
	})
	return out
}

// categoryUsage counts items per category, largest first, with the share of
// all items rounded to two decimals. Uncategorised items count towards the
// total only.
func categoryUsage(items []model.WardrobeItem) []model.CategoryUsage {
	out := []model.CategoryUsage{}
	if len(items) == 0 {
		return out
	}

	index := map[string]int{}
	for _, it := range items {
		if it.Category == "" {
			continue
		}
		i, ok := index[it.Category]
		if !ok {
			i = len(out)
			index[it.Category] = i
			out = append(out, model.CategoryUsage{Category: it.Category})
		}
		out[i].ItemCount++
	}
	for i := range out {
		share := float64(out[i].ItemCount) / float64(len(items)) * 100
		out[i].UsagePercentage = math.Round(share*100) / 100
	}
	slices.SortStableFunc(out, func(a, b model.CategoryUsage) int {
		return cmp.Compare(b.ItemCount, a.ItemCount)
	})
	return out
}
