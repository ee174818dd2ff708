package usecase

import (
	"cmp"
	"context"
	"slices"

	"wardrobe-planner/internal/account"
	"wardrobe-planner/internal/model"
	"wardrobe-planner/pkg/apiclient"
)

// wornListSize bounds the most and least worn lists.
const wornListSize = 5

func (uc *implUseCase) Statistics(ctx context.Context) (model.WardrobeStats, error) {
	s, err := uc.repo.Statistics(ctx)
	switch {
	case err == nil && s != nil:
		return *s, nil
	case err == nil, apiclient.IsNotFound(err):
		if uc.items == nil {
			return model.WardrobeStats{}, account.ErrStatsUnavailable
		}
		uc.l.Infof(ctx, "uc.Statistics: computing locally")
		outfits := 0
		if uc.outfits != nil {
			outfits = uc.outfits.Len()
		}
		return summarize(uc.items.Items(), outfits), nil
	default:
		uc.l.Errorf(ctx, "uc.Statistics: %v", err)
		return model.WardrobeStats{}, err
	}
}

// summarize builds wardrobe statistics from items.
func summarize(items []model.WardrobeItem, outfits int) model.WardrobeStats {
	stats := model.WardrobeStats{
		TotalItems:      len(items),
		TotalOutfits:    outfits,
		ItemsByCategory: map[string]int{},
		ItemsBySeason:   map[string]int{},
	}
	for _, it := range items {
		stats.ItemsByCategory[it.Category]++
		if it.Season != "" {
			stats.ItemsBySeason[it.Season]++
		}
		if it.Favorite {
			stats.FavoriteItemsCount++
		}
	}

	byWear := slices.Clone(items)
	slices.SortStableFunc(byWear, func(a, b model.WardrobeItem) int {
		return cmp.Compare(b.TimesWorn, a.TimesWorn)
	})
	n := min(wornListSize, len(byWear))
	stats.MostWornItems = slices.Clone(byWear[:n])

	slices.Reverse(byWear)
	stats.LeastWornItems = slices.Clone(byWear[:n])
	return stats
}
