package fakebackend

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/pkg/response"
)

type outfitFields struct {
	Name     *string     `json:"name"`
	ItemIDs  *[]model.ID `json:"item_ids"`
	Tags     *[]string   `json:"tags"`
	ImageURL *string     `json:"image_url"`
}

type feedbackFields struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// bindJSON rejects anything that is not a JSON body.
func bindJSON(c *gin.Context, v any) bool {
	if c.ContentType() != gin.MIMEJSON {
		response.Error(c, http.StatusUnsupportedMediaType, errNotJSON)
		return false
	}
	if err := c.ShouldBindJSON(v); err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return false
	}
	return true
}

// ownsItems must be called with mu held.
func (srv *Server) ownsItems(user model.ID, ids []model.ID) bool {
	for _, id := range ids {
		if indexOf(srv.data.items, func(it model.WardrobeItem) bool { return it.ID == id && it.UserID == user }) < 0 {
			return false
		}
	}
	return true
}

func (srv *Server) listOutfits(c *gin.Context) {
	user := currentUser(c)
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	out := []model.Outfit{}
	for _, o := range srv.data.outfits {
		if o.UserID == user.ID {
			out = append(out, o.Clone())
		}
	}
	response.OK(c, out)
}

func (srv *Server) createOutfit(c *gin.Context) {
	var f outfitFields
	if !bindJSON(c, &f) {
		return
	}
	if f.Name == nil || strings.TrimSpace(*f.Name) == "" {
		response.Validation(c, response.FieldError{Loc: []string{"body", "name"}, Msg: "field required", Type: "value_error.missing"})
		return
	}
	if f.ItemIDs == nil || len(*f.ItemIDs) == 0 {
		response.Validation(c, response.FieldError{Loc: []string{"body", "item_ids"}, Msg: "ensure this value has at least 1 items", Type: "value_error.list.min_items"})
		return
	}

	user := currentUser(c)
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	if !srv.ownsItems(user.ID, *f.ItemIDs) {
		response.Error(c, http.StatusBadRequest, errors.New("One or more items not found"))
		return
	}

	now := model.NewTime(srv.now())
	o := model.Outfit{
		ID:        srv.data.nextID(),
		UserID:    user.ID,
		Name:      *f.Name,
		ItemIDs:   append([]model.ID(nil), *f.ItemIDs...),
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if f.Tags != nil {
		o.Tags = append(o.Tags, *f.Tags...)
	}
	if f.ImageURL != nil {
		o.ImageURL = *f.ImageURL
	}
	srv.data.outfits = append(srv.data.outfits, o)
	srv.writeEntity(c, o)
}

// findOutfit must be called with mu held.
func (srv *Server) findOutfit(c *gin.Context, id model.ID) (int, bool) {
	user := currentUser(c)
	i := indexOf(srv.data.outfits, func(o model.Outfit) bool { return o.ID == id && o.UserID == user.ID })
	if i < 0 {
		response.NotFound(c, "Outfit")
		return -1, false
	}
	return i, true
}

func (srv *Server) updateOutfit(c *gin.Context) {
	var f outfitFields
	if !bindJSON(c, &f) {
		return
	}

	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	i, ok := srv.findOutfit(c, model.ID(c.Param("id")))
	if !ok {
		return
	}
	o := srv.data.outfits[i].Clone()
	if f.Name != nil {
		o.Name = *f.Name
	}
	if f.ItemIDs != nil {
		if !srv.ownsItems(o.UserID, *f.ItemIDs) {
			response.Error(c, http.StatusBadRequest, errors.New("One or more items not found"))
			return
		}
		o.ItemIDs = append([]model.ID(nil), *f.ItemIDs...)
	}
	if f.Tags != nil {
		o.Tags = append([]string{}, *f.Tags...)
	}
	if f.ImageURL != nil {
		o.ImageURL = *f.ImageURL
	}
	o.UpdatedAt = model.NewTime(srv.now())
	srv.data.outfits[i] = o
	srv.writeEntity(c, o)
}

func (srv *Server) deleteOutfit(c *gin.Context) {
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	id := model.ID(c.Param("id"))
	i, ok := srv.findOutfit(c, id)
	if !ok {
		return
	}
	srv.data.outfits = append(srv.data.outfits[:i], srv.data.outfits[i+1:]...)

	kept := srv.data.feedback[:0]
	for _, fb := range srv.data.feedback {
		if fb.OutfitID != id {
			kept = append(kept, fb)
		}
	}
	srv.data.feedback = kept
	response.NoContent(c)
}

// Feedback is community data: any user may read and rate any outfit.
func (srv *Server) outfitExists(c *gin.Context, id model.ID) bool {
	if indexOf(srv.data.outfits, func(o model.Outfit) bool { return o.ID == id }) < 0 {
		response.NotFound(c, "Outfit")
		return false
	}
	return true
}

func (srv *Server) listFeedback(c *gin.Context) {
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	id := model.ID(c.Param("id"))
	if !srv.outfitExists(c, id) {
		return
	}
	out := []model.Feedback{}
	for _, fb := range srv.data.feedback {
		if fb.OutfitID == id {
			out = append(out, fb)
		}
	}
	response.OK(c, out)
}

func (srv *Server) addFeedback(c *gin.Context) {
	var f feedbackFields
	if !bindJSON(c, &f) {
		return
	}
	if f.Rating < 1 || f.Rating > 5 {
		response.Validation(c, response.FieldError{Loc: []string{"body", "rating"}, Msg: "rating must be between 1 and 5", Type: "value_error"})
		return
	}

	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	id := model.ID(c.Param("id"))
	if !srv.outfitExists(c, id) {
		return
	}
	fb := model.Feedback{
		ID:        srv.data.nextID(),
		OutfitID:  id,
		UserID:    currentUser(c).ID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: model.NewTime(srv.now()),
	}
	srv.data.feedback = append(srv.data.feedback, fb)
	response.OK(c, fb)
}

// deleteFeedback only lets authors remove their own feedback.
func (srv *Server) deleteFeedback(c *gin.Context) {
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	id := model.ID(c.Param("id"))
	i := indexOf(srv.data.feedback, func(fb model.Feedback) bool { return fb.ID == id })
	if i < 0 {
		response.NotFound(c, "Feedback")
		return
	}
	if srv.data.feedback[i].UserID != currentUser(c).ID {
		response.Error(c, http.StatusForbidden, errors.New("Not allowed to delete this feedback"))
		return
	}
	srv.data.feedback = append(srv.data.feedback[:i], srv.data.feedback[i+1:]...)
	response.NoContent(c)
}
