package model

import "strings"

// Known item categories. Category is an open set; these are the ones the
// catalogue offers by default.
const (
	CategoryShirts      = "Shirts"
	CategoryPants       = "Pants"
	CategoryDresses     = "Dresses"
	CategoryShoes       = "Shoes"
	CategoryAccessories = "Accessories"
	CategoryJackets     = "Jackets"
	CategorySweaters    = "Sweaters"
	CategoryOther       = "Other"
)

// Seasons an item can be tagged with.
const (
	SeasonSpring     = "Spring"
	SeasonSummer     = "Summer"
	SeasonFall       = "Fall"
	SeasonWinter     = "Winter"
	SeasonAllSeasons = "All Seasons"
)

var (
	Categories = []string{
		CategoryShirts, CategoryPants, CategoryDresses, CategoryShoes,
		CategoryAccessories, CategoryJackets, CategorySweaters, CategoryOther,
	}
	Seasons = []string{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAllSeasons}
)

// WardrobeItem is one catalogued piece of clothing.
type WardrobeItem struct {
	ID        ID       `json:"id"`
	UserID    ID       `json:"user_id,omitempty"`
	Name      string   `json:"name"`
	Brand     string   `json:"brand"`
	Category  string   `json:"category"`
	Size      string   `json:"size"`
	Price     float64  `json:"price"`
	Material  string   `json:"material"`
	Season    string   `json:"season"`
	ImageURL  string   `json:"image_url,omitempty"`
	Tags      []string `json:"tags"`
	Color     string   `json:"color,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Favorite  bool     `json:"favorite"`
	TimesWorn int      `json:"times_worn"`
	DateAdded Time     `json:"date_added"`
	LastWorn  Time     `json:"last_worn"`
	UpdatedAt Time     `json:"updated_at"`
}

func (i *WardrobeItem) GetID() string   { return string(i.ID) }
func (i *WardrobeItem) SetID(id string) { i.ID = ID(id) }

func (i *WardrobeItem) Clone() WardrobeItem {
	c := *i
	c.Tags = cloneStrings(i.Tags)
	return c
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	return append([]string(nil), ss...)
}

// ItemChanges names the fields an edit touches. Nil fields stay as they are.
type ItemChanges struct {
	Name     *string
	Brand    *string
	Category *string
	Size     *string
	Price    *float64
	Material *string
	Season   *string
	ImageURL *string
	Tags     *[]string
	Color    *string
	Notes    *string
	Favorite *bool
}

// Empty reports whether c changes nothing.
func (c ItemChanges) Empty() bool {
	return c == ItemChanges{}
}

// Apply writes the set fields onto item.
func (c ItemChanges) Apply(item *WardrobeItem) {
	setString(&item.Name, c.Name)
	setString(&item.Brand, c.Brand)
	setString(&item.Category, c.Category)
	setString(&item.Size, c.Size)
	setString(&item.Material, c.Material)
	setString(&item.Season, c.Season)
	setString(&item.ImageURL, c.ImageURL)
	setString(&item.Color, c.Color)
	setString(&item.Notes, c.Notes)
	if c.Price != nil {
		item.Price = *c.Price
	}
	if c.Tags != nil {
		item.Tags = cloneStrings(*c.Tags)
	}
	if c.Favorite != nil {
		item.Favorite = *c.Favorite
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// SplitTags splits comma separated input, trimming each tag and dropping
// empty ones.
func SplitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
