package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/planner"
	"wardrobe-planner/pkg/datemath"
	"wardrobe-planner/pkg/localstore"
)

func (uc *implUseCase) CreateWeeklyPlan(ctx context.Context, input planner.WeeklyPlanInput) (model.WeeklyPlan, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.WeeklyPlan{}, planner.ErrMissingPlanName
	}

	days, err := normalizeDays(input.Days)
	if err != nil {
		return model.WeeklyPlan{}, err
	}
	if len(days) == 0 {
		return model.WeeklyPlan{}, planner.ErrNoDays
	}

	startText := input.StartDate
	if strings.TrimSpace(startText) == "" {
		startText = "today"
	}
	start, err := uc.dates.Parse(startText, uc.now())
	if err != nil {
		return model.WeeklyPlan{}, fmt.Errorf("%w: %v", planner.ErrInvalidDate, err)
	}

	plan, err := localstore.AppendAndSave(ctx, uc.store, localstore.KeyWeeklyPlans, model.WeeklyPlan{
		Name:         strings.TrimSpace(input.Name),
		StartDate:    uc.dates.Format(start),
		EndDate:      uc.dates.Format(start.AddDate(0, 0, 6)),
		DailyOutfits: days,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateWeeklyPlan: %v", err)
		return model.WeeklyPlan{}, err
	}
	return plan, nil
}

func (uc *implUseCase) WeeklyPlans(ctx context.Context) []model.WeeklyPlan {
	return localstore.LoadList[model.WeeklyPlan](ctx, uc.store, localstore.KeyWeeklyPlans)
}

func (uc *implUseCase) DeleteWeeklyPlan(ctx context.Context, id string) error {
	n, err := localstore.RemoveFromList(ctx, uc.store, localstore.KeyWeeklyPlans, func(p model.WeeklyPlan) bool {
		return p.ID == id
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteWeeklyPlan: %v", err)
		return err
	}
	if n == 0 {
		return planner.ErrPlanNotFound
	}
	return nil
}

func (uc *implUseCase) Schedule(ctx context.Context, planID string) ([]planner.ScheduledDay, error) {
	for _, p := range uc.WeeklyPlans(ctx) {
		if p.ID == planID {
			return uc.schedule(p)
		}
	}
	return nil, planner.ErrPlanNotFound
}

func (uc *implUseCase) schedule(p model.WeeklyPlan) ([]planner.ScheduledDay, error) {
	start, err := time.ParseInLocation(datemath.DateLayout, p.StartDate, uc.dates.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: plan %s start %q", planner.ErrInvalidDate, p.ID, p.StartDate)
	}

	// Plans written by other clients may use capitalised or short keys.
	days, err := normalizeDays(p.DailyOutfits)
	if err != nil {
		return nil, err
	}

	out := []planner.ScheduledDay{}
	for _, d := range uc.dates.WeekStarting(start) {
		id, ok := days[d.Key]
		if !ok {
			continue
		}
		out = append(out, planner.ScheduledDay{
			PlanID:   p.ID,
			PlanName: p.Name,
			Weekday:  d.Key,
			Date:     d.Date,
			OutfitID: id,
		})
	}
	return out, nil
}

// normalizeDays maps weekday keys to lower-case full names and drops days
// without an outfit. Two keys naming the same weekday are rejected.
func normalizeDays(in map[string]model.ID) (map[string]model.ID, error) {
	out := make(map[string]model.ID, len(in))
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		id := in[k]
		if id.IsZero() {
			continue
		}
		wd, ok := model.WeekdayOf(k)
		if !ok {
			return nil, fmt.Errorf("%w: %q", planner.ErrUnknownWeekday, k)
		}
		name := strings.ToLower(wd.String())
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("%w: %s", planner.ErrDuplicateDay, name)
		}
		out[name] = id
	}
	return out, nil
}
