package model

// WearEntry records one occasion an item or an outfit was worn. Exactly one of
// ItemID and OutfitID is set.
type WearEntry struct {
	ID       ID     `json:"id"`
	UserID   ID     `json:"user_id,omitempty"`
	ItemID   ID     `json:"item_id,omitempty"`
	OutfitID ID     `json:"outfit_id,omitempty"`
	DateWorn Time   `json:"date_worn"`
	Notes    string `json:"notes,omitempty"`
}

// ItemWearFrequency pairs an item with how often it was worn.
type ItemWearFrequency struct {
	Item      WardrobeItem `json:"item"`
	WearCount int          `json:"wear_count"`
}

// CategoryUsage is the share of the wardrobe held by one category.
type CategoryUsage struct {
	Category        string  `json:"category"`
	ItemCount       int     `json:"item_count"`
	UsagePercentage float64 `json:"usage_percentage"`
}
