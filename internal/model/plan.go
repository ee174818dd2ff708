package model

import (
	"strings"
	"time"
)

// Weekday keys used in WeeklyPlan.DailyOutfits.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeekdayOf maps a key such as "Monday" or "mon" to a time.Weekday.
func WeekdayOf(key string) (time.Weekday, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if len(k) < 3 {
		return 0, false
	}
	for i, name := range Weekdays {
		if strings.HasPrefix(name, k) {
			return time.Weekday((i + 1) % 7), true
		}
	}
	return 0, false
}

// WeeklyPlan assigns an outfit to each day of a week. It lives only in local
// storage.
type WeeklyPlan struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	DailyOutfits map[string]ID `json:"dailyOutfits"`
	CreatedAt    Time          `json:"createdAt"`
}

func (p *WeeklyPlan) SetID(id string)          { p.ID = id }
func (p *WeeklyPlan) SetCreatedAt(t time.Time) { p.CreatedAt = NewTime(t) }

// Known occasion tags.
const (
	OccasionWedding = "wedding"
	OccasionChurch  = "church"
	OccasionHome    = "home"
	OccasionCasual  = "casual"
	OccasionDate    = "date"
	OccasionWork    = "work"
)

var Occasions = []string{OccasionWedding, OccasionChurch, OccasionHome, OccasionCasual, OccasionDate, OccasionWork}

// EventDetails describes the event an occasion outfit is planned for. Date is
// kept as entered (YYYY-MM-DD).
type EventDetails struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// OccasionOutfit pairs an occasion with the chosen outfit. Local only.
type OccasionOutfit struct {
	ID           string       `json:"id"`
	Occasion     string       `json:"occasion"`
	EventDetails EventDetails `json:"eventDetails"`
	Outfit       Outfit       `json:"outfit"`
	CreatedAt    Time         `json:"createdAt"`
}

func (o *OccasionOutfit) SetID(id string)          { o.ID = id }
func (o *OccasionOutfit) SetCreatedAt(t time.Time) { o.CreatedAt = NewTime(t) }
