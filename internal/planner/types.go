package planner

import (
	"time"

	"wardrobe-planner/internal/model"
)

// WeeklyPlanInput names an outfit per weekday. StartDate accepts anything the
// date parser understands ("2024-05-06", "next monday", ...); empty means
// today. Days keys are weekday names or prefixes ("mon", "Tuesday").
type WeeklyPlanInput struct {
	Name      string
	StartDate string
	Days      map[string]model.ID
}

// OccasionInput pairs an occasion with the outfit chosen for it. The event
// date may be relative and is stored as YYYY-MM-DD.
type OccasionInput struct {
	Occasion string
	Event    model.EventDetails
	Outfit   model.Outfit
}

// ScheduledDay is one resolved day of a weekly plan.
type ScheduledDay struct {
	PlanID   string
	PlanName string
	Weekday  string
	Date     time.Time
	OutfitID model.ID
}

// ExportInput selects what to push to the calendar. An empty PlanID exports
// every weekly plan; occasion outfits with a date are included when
// Occasions is set.
type ExportInput struct {
	PlanID     string
	Occasions  bool
	CalendarID string
}

type ExportOutput struct {
	Created int
	Skipped int // already present in the calendar
	Links   []string
}
