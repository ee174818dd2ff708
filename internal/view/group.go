package view

import "wardrobe-planner/internal/model"

// CategoryGroup is one section of a grouped listing.
type CategoryGroup struct {
	Category string
	Items    []model.WardrobeItem
}

// GroupByCategory groups items in order of each category's first appearance.
func GroupByCategory(items []model.WardrobeItem) []CategoryGroup {
	var groups []CategoryGroup
	index := map[string]int{}
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, CategoryGroup{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Categories returns "all" followed by the distinct item categories in order
// of first appearance.
func Categories(items []model.WardrobeItem) []string {
	return withAll(items, func(it model.WardrobeItem) string { return it.Category })
}

// OutfitCategories is Categories for outfits.
func OutfitCategories(outfits []model.Outfit) []string {
	return withAll(outfits, func(o model.Outfit) string { return o.Category })
}

// Occasions returns "all" followed by the distinct outfit occasions.
func Occasions(outfits []model.Outfit) []string {
	return withAll(outfits, func(o model.Outfit) string { return o.Occasion })
}

func withAll[T any](in []T, key func(T) string) []string {
	out := []string{All}
	seen := map[string]bool{}
	for _, v := range in {
		k := key(v)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
