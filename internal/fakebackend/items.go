package fakebackend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/pkg/response"
)

// itemFields is the JSON part of an item create or update. Pointer fields let
// an update tell "absent" from "zero".
type itemFields struct {
	Name     *string   `json:"name"`
	Brand    *string   `json:"brand"`
	Category *string   `json:"category"`
	Size     *string   `json:"size"`
	Price    *float64  `json:"price"`
	Material *string   `json:"material"`
	Season   *string   `json:"season"`
	ImageURL *string   `json:"image_url"`
	Tags     *[]string `json:"tags"`
	Color    *string   `json:"color"`
	Notes    *string   `json:"notes"`
	Favorite *bool     `json:"favorite"`
}

func (f itemFields) changes() model.ItemChanges {
	return model.ItemChanges{
		Name: f.Name, Brand: f.Brand, Category: f.Category, Size: f.Size,
		Price: f.Price, Material: f.Material, Season: f.Season, ImageURL: f.ImageURL,
		Tags: f.Tags, Color: f.Color, Notes: f.Notes, Favorite: f.Favorite,
	}
}

// readJSONPart decodes the named multipart part into v.
func readJSONPart(c *gin.Context, name string, v any) error {
	fh, err := c.FormFile(name)
	if err != nil {
		return fmt.Errorf("missing %q part: %w", name, err)
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// imageURL stands in for blob storage: an uploaded image gets a stable URL.
func imageURL(c *gin.Context, id model.ID) (string, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("/static/items/%s/%s", id, fh.Filename), true
}

func itemID(c *gin.Context) model.ID {
	return model.ID(c.Param("id"))
}

func (srv *Server) writeEntity(c *gin.Context, v any) {
	if srv.emptyWrites {
		response.NoContent(c)
		return
	}
	response.OK(c, v)
}

func (srv *Server) listItems(c *gin.Context) {
	user := currentUser(c)
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	out := []model.WardrobeItem{}
	for _, it := range srv.data.items {
		if it.UserID == user.ID {
			out = append(out, it.Clone())
		}
	}
	response.OK(c, out)
}

func (srv *Server) createItem(c *gin.Context) {
	var f itemFields
	if err := readJSONPart(c, "item", &f); err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	var missing []response.FieldError
	for _, req := range []struct {
		name string
		v    *string
	}{{"name", f.Name}, {"brand", f.Brand}, {"category", f.Category}} {
		if req.v == nil || strings.TrimSpace(*req.v) == "" {
			missing = append(missing, response.FieldError{Loc: []string{"body", "item", req.name}, Msg: "field required", Type: "value_error.missing"})
		}
	}
	if len(missing) > 0 {
		response.Validation(c, missing...)
		return
	}

	user := currentUser(c)
	now := model.NewTime(srv.now())

	srv.data.mu.Lock()
	item := model.WardrobeItem{ID: srv.data.nextID(), UserID: user.ID, Tags: []string{}, DateAdded: now, UpdatedAt: now}
	f.changes().Apply(&item)
	if url, ok := imageURL(c, item.ID); ok {
		item.ImageURL = url
	}
	srv.data.items = append(srv.data.items, item)
	srv.data.mu.Unlock()

	srv.writeEntity(c, item)
}

// findItem must be called with mu held.
func (srv *Server) findItem(c *gin.Context) (int, bool) {
	user, id := currentUser(c), itemID(c)
	i := indexOf(srv.data.items, func(it model.WardrobeItem) bool { return it.ID == id && it.UserID == user.ID })
	if i < 0 {
		response.NotFound(c, "Item")
		return -1, false
	}
	return i, true
}

func (srv *Server) getItem(c *gin.Context) {
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	i, ok := srv.findItem(c)
	if !ok {
		return
	}
	response.OK(c, srv.data.items[i])
}

func (srv *Server) updateItem(c *gin.Context) {
	var f itemFields
	if err := readJSONPart(c, "item_update", &f); err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}
	if f.Price != nil && *f.Price < 0 {
		response.Validation(c, response.FieldError{Loc: []string{"body", "item_update", "price"}, Msg: "ensure this value is greater than or equal to 0", Type: "value_error.number.not_ge"})
		return
	}

	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	i, ok := srv.findItem(c)
	if !ok {
		return
	}
	item := srv.data.items[i].Clone()
	f.changes().Apply(&item)
	if url, ok := imageURL(c, item.ID); ok {
		item.ImageURL = url
	}
	item.UpdatedAt = model.NewTime(srv.now())
	srv.data.items[i] = item

	srv.writeEntity(c, item)
}

func (srv *Server) deleteItem(c *gin.Context) {
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()

	i, ok := srv.findItem(c)
	if !ok {
		return
	}
	srv.data.items = append(srv.data.items[:i], srv.data.items[i+1:]...)
	response.NoContent(c)
}

var errNotJSON = errors.New("request body must be JSON")
