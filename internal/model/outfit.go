package model

import "time"

// Outfit groups wardrobe items. Backend outfits reference items by id; outfits
// assembled offline embed item snapshots in Items. Category, Occasion, Rating
// and the wear counters are organiser metadata kept client-side.
type Outfit struct {
	ID        ID             `json:"id"`
	UserID    ID             `json:"user_id,omitempty"`
	Name      string         `json:"name"`
	ItemIDs   []ID           `json:"item_ids"`
	Items     []WardrobeItem `json:"items,omitempty"`
	Tags      []string       `json:"tags"`
	ImageURL  string         `json:"image_url,omitempty"`
	CreatedAt Time           `json:"created_at"`
	UpdatedAt Time           `json:"updated_at"`

	Category  string `json:"category,omitempty"`
	Season    string `json:"season,omitempty"`
	Occasion  string `json:"occasion,omitempty"`
	Rating    int    `json:"rating,omitempty"`
	LastWorn  Time   `json:"last_worn"`
	TimesWorn int    `json:"times_worn,omitempty"`
	Favorite  bool   `json:"favorite,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

func (o *Outfit) GetID() string   { return string(o.ID) }
func (o *Outfit) SetID(id string) { o.ID = ID(id) }

func (o *Outfit) Clone() Outfit {
	c := *o
	c.ItemIDs = append([]ID(nil), o.ItemIDs...)
	c.Tags = cloneStrings(o.Tags)
	if o.Items != nil {
		c.Items = make([]WardrobeItem, len(o.Items))
		for i := range o.Items {
			c.Items[i] = o.Items[i].Clone()
		}
	}
	return c
}

// SavedOutfit is an outfit kept only in local storage.
type SavedOutfit struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Items     []WardrobeItem `json:"items"`
	CreatedAt Time           `json:"createdAt"`
}

func (s *SavedOutfit) SetID(id string)          { s.ID = id }
func (s *SavedOutfit) SetCreatedAt(t time.Time) { s.CreatedAt = NewTime(t) }
