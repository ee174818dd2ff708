package fakebackend

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/pkg/response"
)

type profileFields struct {
	FullName         *string   `json:"full_name"`
	Gender           *string   `json:"gender"`
	Location         *string   `json:"location"`
	BodyType         *string   `json:"body_type"`
	StylePreferences *[]string `json:"style_preferences"`
	FavoriteColors   *[]string `json:"favorite_colors"`
	Bio              *string   `json:"bio"`
}

func (srv *Server) getProfile(c *gin.Context) {
	user := currentUser(c)
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	p, ok := srv.data.profiles[user.ID]
	if !ok {
		p = model.Profile{UserID: user.ID}
	}
	response.OK(c, p)
}

func (srv *Server) updateProfile(c *gin.Context) {
	var f profileFields
	if !bindJSON(c, &f) {
		return
	}

	user := currentUser(c)
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	p, ok := srv.data.profiles[user.ID]
	if !ok {
		p = model.Profile{UserID: user.ID}
	}
	for dst, v := range map[*string]*string{
		&p.FullName: f.FullName, &p.Gender: f.Gender, &p.Location: f.Location,
		&p.BodyType: f.BodyType, &p.Bio: f.Bio,
	} {
		if v != nil {
			*dst = *v
		}
	}
	if f.StylePreferences != nil {
		p.StylePreferences = append([]string{}, *f.StylePreferences...)
	}
	if f.FavoriteColors != nil {
		p.FavoriteColors = append([]string{}, *f.FavoriteColors...)
	}
	p.UpdatedAt = model.NewTime(srv.now())
	srv.data.profiles[user.ID] = p
	srv.writeEntity(c, p)
}

// suggestions derives canned recommendations from the user's items.
func (srv *Server) suggestions(c *gin.Context) {
	user := currentUser(c)
	srv.data.mu.Lock()
	owned := map[string]int{}
	for _, it := range srv.data.items {
		if it.UserID == user.ID {
			owned[it.Category]++
		}
	}
	srv.data.mu.Unlock()

	out := model.WardrobeSuggestions{NewOutfitIdeas: []string{}, ItemsToAcquire: []string{}}
	for _, cat := range model.Categories {
		if cat == model.CategoryOther {
			continue
		}
		if owned[cat] == 0 {
			out.ItemsToAcquire = append(out.ItemsToAcquire, cat)
		}
	}
	if owned[model.CategoryShirts] > 0 && owned[model.CategoryPants] > 0 {
		out.NewOutfitIdeas = append(out.NewOutfitIdeas, "Pair a shirt with pants for a smart casual look")
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr == nil && lonErr == nil {
		out.NewOutfitIdeas = append(out.NewOutfitIdeas, fmt.Sprintf("Dress for the weather near %.2f,%.2f", lat, lon))
	}
	response.OK(c, out)
}

func (srv *Server) statistics(c *gin.Context) {
	user := currentUser(c)
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	stats := model.WardrobeStats{
		ItemsByCategory: map[string]int{},
		ItemsBySeason:   map[string]int{},
		MostWornItems:   []model.WardrobeItem{},
		LeastWornItems:  []model.WardrobeItem{},
	}
	var items []model.WardrobeItem
	for _, it := range srv.data.items {
		if it.UserID != user.ID {
			continue
		}
		items = append(items, it)
		stats.ItemsByCategory[it.Category]++
		if it.Season != "" {
			stats.ItemsBySeason[it.Season]++
		}
		if it.Favorite {
			stats.FavoriteItemsCount++
		}
	}
	for _, o := range srv.data.outfits {
		if o.UserID == user.ID {
			stats.TotalOutfits++
		}
	}
	stats.TotalItems = len(items)

	slices.SortStableFunc(items, func(a, b model.WardrobeItem) int { return cmp.Compare(b.TimesWorn, a.TimesWorn) })
	n := min(3, len(items))
	stats.MostWornItems = append(stats.MostWornItems, items[:n]...)
	slices.Reverse(items)
	stats.LeastWornItems = append(stats.LeastWornItems, items[:n]...)
	response.OK(c, stats)
}
