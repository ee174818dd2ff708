package fakebackend

import (
	"cmp"
	"errors"
	"math"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/pkg/response"
)

const defaultWearLimit = 100

type wearFields struct {
	ItemID   model.ID    `json:"item_id"`
	OutfitID model.ID    `json:"outfit_id"`
	DateWorn *model.Time `json:"date_worn"`
	Notes    string      `json:"notes"`
}

// logWear records a wear of exactly one item or outfit. Logging an item also
// bumps its times_worn and sets last_worn.
func (srv *Server) logWear(c *gin.Context) {
	var f wearFields
	if !bindJSON(c, &f) {
		return
	}
	if f.ItemID.IsZero() == f.OutfitID.IsZero() {
		response.Validation(c, response.FieldError{Loc: []string{"body"}, Msg: "Either item_id or outfit_id must be provided, but not both.", Type: "value_error"})
		return
	}
	if f.DateWorn == nil || f.DateWorn.IsZero() {
		response.Validation(c, response.FieldError{Loc: []string{"body", "date_worn"}, Msg: "field required", Type: "value_error.missing"})
		return
	}

	user := currentUser(c)
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	item := -1
	if !f.ItemID.IsZero() {
		item = indexOf(srv.data.items, func(it model.WardrobeItem) bool { return it.ID == f.ItemID })
		if item < 0 {
			response.NotFound(c, "Wardrobe item")
			return
		}
		if srv.data.items[item].UserID != user.ID {
			response.Error(c, http.StatusForbidden, errors.New("Item does not belong to the current user"))
			return
		}
	} else {
		i := indexOf(srv.data.outfits, func(o model.Outfit) bool { return o.ID == f.OutfitID })
		if i < 0 {
			response.NotFound(c, "Outfit")
			return
		}
		if srv.data.outfits[i].UserID != user.ID {
			response.Error(c, http.StatusForbidden, errors.New("Outfit does not belong to the current user"))
			return
		}
	}

	entry := model.WearEntry{
		ID:       srv.data.nextID(),
		UserID:   user.ID,
		ItemID:   f.ItemID,
		OutfitID: f.OutfitID,
		DateWorn: *f.DateWorn,
		Notes:    f.Notes,
	}
	srv.data.wears = append(srv.data.wears, entry)

	if item >= 0 {
		it := &srv.data.items[item]
		it.TimesWorn++
		it.LastWorn = entry.DateWorn
		it.UpdatedAt = model.NewTime(srv.now())
	}

	if srv.emptyWrites {
		response.NoContent(c)
		return
	}
	response.Created(c, entry)
}

func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		response.Validation(c, response.FieldError{Loc: []string{"query", name}, Msg: "value is not a valid integer", Type: "type_error.integer"})
		return 0, false
	}
	return n, true
}

func (srv *Server) listWear(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultWearLimit)
	if !ok {
		return
	}
	itemID, outfitID := model.ID(c.Query("item_id")), model.ID(c.Query("outfit_id"))

	user := currentUser(c)
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	out := []model.WearEntry{}
	for _, e := range srv.data.wears {
		if e.UserID != user.ID {
			continue
		}
		if !itemID.IsZero() && e.ItemID != itemID {
			continue
		}
		if !outfitID.IsZero() && e.OutfitID != outfitID {
			continue
		}
		out = append(out, e)
	}
	start := min(skip, len(out))
	end := min(start+limit, len(out))
	response.OK(c, out[start:end])
}

// deleteWear leaves the item's counters as they are.
func (srv *Server) deleteWear(c *gin.Context) {
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	id := model.ID(c.Param("id"))
	i := indexOf(srv.data.wears, func(e model.WearEntry) bool { return e.ID == id })
	if i < 0 {
		response.NotFound(c, "Style history entry")
		return
	}
	if srv.data.wears[i].UserID != currentUser(c).ID {
		response.Error(c, http.StatusForbidden, errors.New("Not authorized to delete this entry"))
		return
	}
	srv.data.wears = append(srv.data.wears[:i], srv.data.wears[i+1:]...)
	response.NoContent(c)
}

// userItems must be called with mu held.
func (srv *Server) userItems(user model.ID) []model.WardrobeItem {
	var out []model.WardrobeItem
	for _, it := range srv.data.items {
		if it.UserID == user {
			out = append(out, it.Clone())
		}
	}
	return out
}

func (srv *Server) itemWearFrequency(c *gin.Context) {
	srv.data.mu.Lock()
	items := srv.userItems(currentUser(c).ID)
	srv.data.mu.Unlock()

	out := make([]model.ItemWearFrequency, 0, len(items))
	for _, it := range items {
		out = append(out, model.ItemWearFrequency{Item: it, WearCount: it.TimesWorn})
	}
	slices.SortStableFunc(out, func(a, b model.ItemWearFrequency) int { return cmp.Compare(b.WearCount, a.WearCount) })
	response.OK(c, out)
}

func (srv *Server) categoryUsage(c *gin.Context) {
	srv.data.mu.Lock()
	items := srv.userItems(currentUser(c).ID)
	srv.data.mu.Unlock()

	out := []model.CategoryUsage{}
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
		out[i].UsagePercentage = math.Round(float64(out[i].ItemCount)/float64(len(items))*10000) / 100
	}
	slices.SortStableFunc(out, func(a, b model.CategoryUsage) int { return cmp.Compare(b.ItemCount, a.ItemCount) })
	response.OK(c, out)
}
