package model

// User is the authenticated identity.
type User struct {
	ID        ID     `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt Time   `json:"created_at"`
	UpdatedAt Time   `json:"updated_at"`
}

// Profile holds style preferences for the current user.
type Profile struct {
	UserID           ID       `json:"user_id,omitempty"`
	FullName         string   `json:"full_name,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	Location         string   `json:"location,omitempty"`
	BodyType         string   `json:"body_type,omitempty"`
	StylePreferences []string `json:"style_preferences,omitempty"`
	FavoriteColors   []string `json:"favorite_colors,omitempty"`
	Bio              string   `json:"bio,omitempty"`
	UpdatedAt        Time     `json:"updated_at"`
}

// WardrobeSuggestions is the backend's recommendation payload, passed through
// untouched.
type WardrobeSuggestions struct {
	NewOutfitIdeas []string `json:"newOutfitIdeas"`
	ItemsToAcquire []string `json:"itemsToAcquire"`
}

// Feedback is a community rating left on an outfit.
type Feedback struct {
	ID        ID     `json:"id"`
	OutfitID  ID     `json:"outfit_id"`
	UserID    ID     `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt Time   `json:"created_at"`
}

// WardrobeStats summarises the wardrobe.
type WardrobeStats struct {
	TotalItems         int            `json:"total_items"`
	TotalOutfits       int            `json:"total_outfits"`
	ItemsByCategory    map[string]int `json:"items_by_category"`
	ItemsBySeason      map[string]int `json:"items_by_season"`
	MostWornItems      []WardrobeItem `json:"most_worn_items"`
	LeastWornItems     []WardrobeItem `json:"least_worn_items"`
	FavoriteItemsCount int            `json:"favorite_items_count"`
}
