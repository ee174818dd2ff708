package wardrobeapi

import "wardrobe-planner/internal/model"

// Credentials are posted to /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by /login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Registration is posted to /register.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse carries whichever of token and user the backend returned.
// When AccessToken is empty the user has to log in separately.
type RegisterResponse struct {
	AccessToken string
	TokenType   string
	User        *model.User
}

// ItemCreate is the "item" part of a create request.
type ItemCreate struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Size     string   `json:"size,omitempty"`
	Price    float64  `json:"price"`
	Material string   `json:"material,omitempty"`
	Season   string   `json:"season,omitempty"`
	ImageURL *string  `json:"image_url,omitempty"`
	Tags     []string `json:"tags"`
	Color    string   `json:"color,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Favorite bool     `json:"favorite,omitempty"`
}

// ItemUpdate is the "item_update" part of an update request. Nil fields are
// left unchanged by the backend.
type ItemUpdate struct {
	Name     *string   `json:"name,omitempty"`
	Brand    *string   `json:"brand,omitempty"`
	Category *string   `json:"category,omitempty"`
	Size     *string   `json:"size,omitempty"`
	Price    *float64  `json:"price,omitempty"`
	Material *string   `json:"material,omitempty"`
	Season   *string   `json:"season,omitempty"`
	ImageURL *string   `json:"image_url,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Color    *string   `json:"color,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
	Favorite *bool     `json:"favorite,omitempty"`
}

// Empty reports whether u changes nothing.
func (u ItemUpdate) Empty() bool {
	return u == ItemUpdate{}
}

// Image is an optional binary attachment on item create/update.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// OutfitCreate is posted to /outfits/.
type OutfitCreate struct {
	Name     string     `json:"name"`
	ItemIDs  []model.ID `json:"item_ids"`
	Tags     []string   `json:"tags,omitempty"`
	ImageURL string     `json:"image_url,omitempty"`
}

// OutfitUpdate changes only the non-nil fields.
type OutfitUpdate struct {
	Name     *string     `json:"name,omitempty"`
	ItemIDs  *[]model.ID `json:"item_ids,omitempty"`
	Tags     *[]string   `json:"tags,omitempty"`
	ImageURL *string     `json:"image_url,omitempty"`
}

// ProfileUpdate changes only the non-nil fields.
type ProfileUpdate struct {
	FullName         *string   `json:"full_name,omitempty"`
	Gender           *string   `json:"gender,omitempty"`
	Location         *string   `json:"location,omitempty"`
	BodyType         *string   `json:"body_type,omitempty"`
	StylePreferences *[]string `json:"style_preferences,omitempty"`
	FavoriteColors   *[]string `json:"favorite_colors,omitempty"`
	Bio              *string   `json:"bio,omitempty"`
}

// FeedbackCreate is posted to an outfit's feedback list.
type FeedbackCreate struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// Location narrows recommendations; nil coordinates are omitted.
type Location struct {
	Lat *float64
	Lon *float64
}

// WearCreate is posted to /style-history/. Set exactly one of ItemID and
// OutfitID.
type WearCreate struct {
	ItemID   model.ID   `json:"item_id,omitempty"`
	OutfitID model.ID   `json:"outfit_id,omitempty"`
	DateWorn model.Time `json:"date_worn"`
	Notes    string     `json:"notes,omitempty"`
}

// WearQuery filters the wear history. Zero fields are not sent.
type WearQuery struct {
	ItemID   model.ID
	OutfitID model.ID
	Skip     int
	Limit    int
}
