// Package view computes the filtered, sorted and grouped projections shown to
// the user. Every function is pure and recomputes from its input; nothing is
// cached between calls.
package view

import (
	"cmp"
	"slices"
	"strings"

	"wardrobe-planner/internal/model"
)

// All is the filter value that disables a category or occasion filter.
const All = "all"

// SortKey selects the ordering of a view.
type SortKey string

const (
	SortNone      SortKey = ""
	SortName      SortKey = "name"
	SortRating    SortKey = "rating"
	SortLastWorn  SortKey = "lastWorn"
	SortDate      SortKey = "date"
	SortTimesWorn SortKey = "timesWorn"
)

// SortKeys lists the keys accepted by ParseSortKey.
var SortKeys = []SortKey{SortName, SortRating, SortLastWorn, SortDate, SortTimesWorn}

// ParseSortKey accepts the key names case-insensitively. Unknown names map to
// SortNone, which keeps collection order.
func ParseSortKey(s string) SortKey {
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), s) {
			return k
		}
	}
	return SortNone
}

// ItemQuery drives Items.
type ItemQuery struct {
	Search        string
	Category      string
	FavoritesOnly bool
	Sort          SortKey
}

// OutfitQuery drives Outfits.
type OutfitQuery struct {
	Search        string
	Category      string
	Occasion      string
	FavoritesOnly bool
	Sort          SortKey
}

// Items returns the items matching q in q.Sort order. The input is not
// modified.
func Items(items []model.WardrobeItem, q ItemQuery) []model.WardrobeItem {
	needle := strings.ToLower(q.Search)
	out := make([]model.WardrobeItem, 0, len(items))
	for _, it := range items {
		if !matchesFilter(q.Category, it.Category) {
			continue
		}
		if q.FavoritesOnly && !it.Favorite {
			continue
		}
		if !matchesText(needle, it.Tags, it.Name, it.Brand) {
			continue
		}
		out = append(out, it)
	}

	if cmpFn := itemOrder(q.Sort); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

// Outfits returns the outfits matching q in q.Sort order. Text search covers
// the outfit name and tags.
func Outfits(outfits []model.Outfit, q OutfitQuery) []model.Outfit {
	needle := strings.ToLower(q.Search)
	out := make([]model.Outfit, 0, len(outfits))
	for _, o := range outfits {
		if !matchesFilter(q.Category, o.Category) || !matchesFilter(q.Occasion, o.Occasion) {
			continue
		}
		if q.FavoritesOnly && !o.Favorite {
			continue
		}
		if !matchesText(needle, o.Tags, o.Name) {
			continue
		}
		out = append(out, o)
	}

	if cmpFn := outfitOrder(q.Sort); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

func matchesFilter(filter, value string) bool {
	return filter == "" || filter == All || filter == value
}

// matchesText is a case-insensitive substring test. needle must already be
// lower-cased; an empty needle matches everything.
func matchesText(needle string, tags []string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func compareNames(a, b string) int {
	if c := cmp.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// newestFirst orders zero times last.
func newestFirst(a, b model.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return b.Compare(a.Time)
}

func itemOrder(k SortKey) func(a, b model.WardrobeItem) int {
	switch k {
	case SortName:
		return func(a, b model.WardrobeItem) int { return compareNames(a.Name, b.Name) }
	case SortLastWorn:
		return func(a, b model.WardrobeItem) int { return newestFirst(a.LastWorn, b.LastWorn) }
	case SortDate:
		return func(a, b model.WardrobeItem) int { return newestFirst(a.DateAdded, b.DateAdded) }
	case SortTimesWorn:
		return func(a, b model.WardrobeItem) int { return cmp.Compare(b.TimesWorn, a.TimesWorn) }
	}
	return nil
}

func outfitOrder(k SortKey) func(a, b model.Outfit) int {
	switch k {
	case SortName:
		return func(a, b model.Outfit) int { return compareNames(a.Name, b.Name) }
	case SortRating:
		return func(a, b model.Outfit) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortLastWorn:
		return func(a, b model.Outfit) int { return newestFirst(a.LastWorn, b.LastWorn) }
	case SortDate:
		return func(a, b model.Outfit) int { return newestFirst(a.CreatedAt, b.CreatedAt) }
	case SortTimesWorn:
		return func(a, b model.Outfit) int { return cmp.Compare(b.TimesWorn, a.TimesWorn) }
	}
	return nil
}
