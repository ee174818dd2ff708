package planner

import (
	"context"

	"wardrobe-planner/internal/model"
)

// UseCase defines the business logic interface for the planner domain.
// Plans live only in local storage.
type UseCase interface {
	CreateWeeklyPlan(ctx context.Context, input WeeklyPlanInput) (model.WeeklyPlan, error)
	WeeklyPlans(ctx context.Context) []model.WeeklyPlan
	DeleteWeeklyPlan(ctx context.Context, id string) error
	// Schedule resolves a plan's weekday slots to dates, in date order.
	Schedule(ctx context.Context, planID string) ([]ScheduledDay, error)

	PlanOccasion(ctx context.Context, input OccasionInput) (model.OccasionOutfit, error)
	// OccasionOutfits lists saved occasion outfits; "" or "all" lists every one.
	OccasionOutfits(ctx context.Context, occasion string) []model.OccasionOutfit
	DeleteOccasionOutfit(ctx context.Context, id string) error

	// ExportCalendar pushes plans to the calendar as all-day events, skipping
	// days that were exported before.
	ExportCalendar(ctx context.Context, input ExportInput) (ExportOutput, error)
}
