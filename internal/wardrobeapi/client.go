// Package wardrobeapi exposes one typed method per backend endpoint. Methods
// return the decoded resource or the underlying error; nothing is swallowed.
// A nil resource with a nil error means the backend answered with no body.
package wardrobeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/pkg/apiclient"
)

// Doer is the part of apiclient.Client the resource methods need.
type Doer interface {
	Request(ctx context.Context, req apiclient.Request) (json.RawMessage, error)
}

// Client wraps the generic request helper with typed endpoints.
type Client struct {
	api       Doer
	loginForm bool
}

type Option func(*Client)

// WithLoginForm sends login credentials as an OAuth2 password form instead
// of JSON.
func WithLoginForm(enabled bool) Option {
	return func(c *Client) { c.loginForm = enabled }
}

func New(api Doer, opts ...Option) *Client {
	c := &Client{api: api}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func decode[T any](raw json.RawMessage, op string) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return &v, nil
}

func decodeList[T any](raw json.RawMessage, op string) ([]T, error) {
	v, err := decode[[]T](raw, op)
	if err != nil {
		return nil, err
	}
	if v == nil || *v == nil {
		return []T{}, nil
	}
	return *v, nil
}

func (c *Client) call(ctx context.Context, req apiclient.Request) (json.RawMessage, error) {
	return c.api.Request(ctx, req)
}

// Login exchanges credentials for a token via POST /login.
func (c *Client) Login(ctx context.Context, creds Credentials) (*TokenResponse, error) {
	req := apiclient.Request{Method: http.MethodPost, Path: "/login", Body: creds}
	if c.loginForm {
		req.Body = url.Values{"username": {creds.Username}, "password": {creds.Password}}
	}
	raw, err := c.call(ctx, req)
	if err != nil {
		return nil, err
	}
	return decode[TokenResponse](raw, "login")
}

// Register creates an account via POST /register. The backend may answer with
// a token, with the created user, or both.
func (c *Client) Register(ctx context.Context, reg Registration) (*RegisterResponse, error) {
	raw, err := c.call(ctx, apiclient.Request{Method: http.MethodPost, Path: "/register", Body: reg})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &RegisterResponse{}, nil
	}

	var body struct {
		AccessToken string   `json:"access_token"`
		TokenType   string   `json:"token_type"`
		ID          model.ID `json:"id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("failed to decode register response: %w", err)
	}

	resp := &RegisterResponse{AccessToken: body.AccessToken, TokenType: body.TokenType}
	if !body.ID.IsZero() {
		user, err := decode[model.User](raw, "register")
		if err != nil {
			return nil, err
		}
		resp.User = user
	}
	return resp, nil
}

// Me fetches the identity bound to token via GET /users/me. The token is
// passed explicitly so a candidate token can be checked before it is stored.
func (c *Client) Me(ctx context.Context, token string) (*model.User, error) {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	raw, err := c.call(ctx, apiclient.Request{Path: "/users/me", Header: h})
	if err != nil {
		return nil, err
	}
	return decode[model.User](raw, "users/me")
}

func itemForm(partName string, data any, img *Image) (*apiclient.Form, error) {
	form := apiclient.NewForm()
	if err := form.AddJSON(partName, data); err != nil {
		return nil, err
	}
	if img != nil && len(img.Data) > 0 {
		form.AddFile("image", img.Filename, img.ContentType, img.Data)
	}
	return form, nil
}

// CreateItem posts a multipart item (JSON part "item" plus optional "image")
// to /wardrobe/items/.
func (c *Client) CreateItem(ctx context.Context, item ItemCreate, img *Image) (*model.WardrobeItem, error) {
	form, err := itemForm("item", item, img)
	if err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, apiclient.Request{Method: http.MethodPost, Path: "/wardrobe/items/", Body: form})
	if err != nil {
		return nil, err
	}
	return decode[model.WardrobeItem](raw, "create item")
}

// UpdateItem puts a multipart update (JSON part "item_update" plus optional
// "image") to /wardrobe/items/{id}.
func (c *Client) UpdateItem(ctx context.Context, id model.ID, update ItemUpdate, img *Image) (*model.WardrobeItem, error) {
	form, err := itemForm("item_update", update, img)
	if err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, apiclient.Request{Method: http.MethodPut, Path: "/wardrobe/items/" + url.PathEscape(id.String()), Body: form})
	if err != nil {
		return nil, err
	}
	return decode[model.WardrobeItem](raw, "update item")
}

func (c *Client) ListItems(ctx context.Context) ([]model.WardrobeItem, error) {
	raw, err := c.call(ctx, apiclient.Request{Path: "/wardrobe/items/"})
	if err != nil {
		return nil, err
	}
	return decodeList[model.WardrobeItem](raw, "list items")
}

func (c *Client) GetItem(ctx context.Context, id model.ID) (*model.WardrobeItem, error) {
	raw, err := c.call(ctx, apiclient.Request{Path: "/wardrobe/items/" + url.PathEscape(id.String())})
	if err != nil {
		return nil, err
	}
	return decode[model.WardrobeItem](raw, "get item")
}

func (c *Client) DeleteItem(ctx context.Context, id model.ID) error {
	_, err := c.call(ctx, apiclient.Request{Method: http.MethodDelete, Path: "/wardrobe/items/" + url.PathEscape(id.String())})
	return err
}

func (c *Client) ListOutfits(ctx context.Context) ([]model.Outfit, error) {
	raw, err := c.call(ctx, apiclient.Request{Path: "/outfits/"})
	if err != nil {
		return nil, err
	}
	return decodeList[model.Outfit](raw, "list outfits")
}

func (c *Client) CreateOutfit(ctx context.Context, outfit OutfitCreate) (*model.Outfit, error) {
	raw, err := c.call(ctx, apiclient.Request{Method: http.MethodPost, Path: "/outfits/", Body: outfit})
	if err != nil {
		return nil, err
	}
	return decode[model.Outfit](raw, "create outfit")
}

func (c *Client) UpdateOutfit(ctx context.Context, id model.ID, update OutfitUpdate) (*model.Outfit, error) {
	raw, err := c.call(ctx, apiclient.Request{Method: http.MethodPut, Path: "/outfits/" + url.PathEscape(id.String()), Body: update})
	if err != nil {
		return nil, err
	}
	return decode[model.Outfit](raw, "update outfit")
}

func (c *Client) DeleteOutfit(ctx context.Context, id model.ID) error {
	_, err := c.call(ctx, apiclient.Request{Method: http.MethodDelete, Path: "/outfits/" + url.PathEscape(id.String())})
	return err
}

// GetProfile fetches GET /profile/me.
func (c *Client) GetProfile(ctx context.Context) (*model.Profile, error) {
	raw, err := c.call(ctx, apiclient.Request{Path: "/profile/me"})
	if err != nil {
		return nil, err
	}
	return decode[model.Profile](raw, "get profile")
}

// UpdateProfile sends a JSON PUT /profile/me.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*model.Profile, error) {
	raw, err := c.call(ctx, apiclient.Request{Method: http.MethodPut, Path: "/profile/me", Body: update})
	if err != nil {
		return nil, err
	}
	return decode[model.Profile](raw, "update profile")
}

// WardrobeSuggestions fetches GET /recommendations/wardrobe/, adding lat and
// lon only when set.
func (c *Client) WardrobeSuggestions(ctx context.Context, loc Location) (*model.WardrobeSuggestions, error) {
	q := url.Values{}
	if loc.Lat != nil {
		q.Set("lat", strconv.FormatFloat(*loc.Lat, 'f', -1, 64))
	}
	if loc.Lon != nil {
		q.Set("lon", strconv.FormatFloat(*loc.Lon, 'f', -1, 64))
	}
	raw, err := c.call(ctx, apiclient.Request{Path: "/recommendations/wardrobe/", Query: q})
	if err != nil {
		return nil, err
	}
	return decode[model.WardrobeSuggestions](raw, "wardrobe suggestions")
}

func feedbackPath(outfitID model.ID) string {
	return "/community/outfits/" + url.PathEscape(outfitID.String()) + "/feedback"
}

func (c *Client) ListFeedback(ctx context.Context, outfitID model.ID) ([]model.Feedback, error) {
	raw, err := c.call(ctx, apiclient.Request{Path: feedbackPath(outfitID)})
	if err != nil {
		return nil, err
	}
	return decodeList[model.Feedback](raw, "list feedback")
}

func (c *Client) AddFeedback(ctx context.Context, outfitID model.ID, fb FeedbackCreate) (*model.Feedback, error) {
	raw, err := c.call(ctx, apiclient.Request{Method: http.MethodPost, Path: feedbackPath(outfitID), Body: fb})
	if err != nil {
		return nil, err
	}
	return decode[model.Feedback](raw, "add feedback")
}

func (c *Client) DeleteFeedback(ctx context.Context, feedbackID model.ID) error {
	_, err := c.call(ctx, apiclient.Request{Method: http.MethodDelete, Path: "/community/feedback/" + url.PathEscape(feedbackID.String())})
	return err
}

// Statistics fetches GET /statistics/summary.
func (c *Client) Statistics(ctx context.Context) (*model.WardrobeStats, error) {
	raw, err := c.call(ctx, apiclient.Request{Path: "/statistics/summary"})
	if err != nil {
		return nil, err
	}
	return decode[model.WardrobeStats](raw, "statistics")
}

// LogWear records a wear via POST /style-history/. Logging an item makes the
// backend bump its times_worn and last_worn.
func (c *Client) LogWear(ctx context.Context, wear WearCreate) (*model.WearEntry, error) {
	raw, err := c.call(ctx, apiclient.Request{Method: http.MethodPost, Path: "/style-history/", Body: wear})
	if err != nil {
		return nil, err
	}
	return decode[model.WearEntry](raw, "log wear")
}

func (c *Client) ListWearHistory(ctx context.Context, query WearQuery) ([]model.WearEntry, error) {
	q := url.Values{}
	if !query.ItemID.IsZero() {
		q.Set("item_id", query.ItemID.String())
	}
	if !query.OutfitID.IsZero() {
		q.Set("outfit_id", query.OutfitID.String())
	}
	if query.Skip > 0 {
		q.Set("skip", strconv.Itoa(query.Skip))
	}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}
	raw, err := c.call(ctx, apiclient.Request{Path: "/style-history/", Query: q})
	if err != nil {
		return nil, err
	}
	return decodeList[model.WearEntry](raw, "list wear history")
}

func (c *Client) DeleteWearEntry(ctx context.Context, id model.ID) error {
	_, err := c.call(ctx, apiclient.Request{Method: http.MethodDelete, Path: "/style-history/" + url.PathEscape(id.String())})
	return err
}

// ItemWearFrequency fetches GET /statistics/item-wear-frequency, most worn
// first.
func (c *Client) ItemWearFrequency(ctx context.Context) ([]model.ItemWearFrequency, error) {
	raw, err := c.call(ctx, apiclient.Request{Path: "/statistics/item-wear-frequency"})
	if err != nil {
		return nil, err
	}
	return decodeList[model.ItemWearFrequency](raw, "item wear frequency")
}

// CategoryUsage fetches GET /statistics/category-usage.
func (c *Client) CategoryUsage(ctx context.Context) ([]model.CategoryUsage, error) {
	raw, err := c.call(ctx, apiclient.Request{Path: "/statistics/category-usage"})
	if err != nil {
		return nil, err
	}
	return decodeList[model.CategoryUsage](raw, "category usage")
}
