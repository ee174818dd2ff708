package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/planner"
	"wardrobe-planner/pkg/datemath"
	"wardrobe-planner/pkg/gcalendar"
)

// entryProperty tags exported events so a second export can skip them.
const entryProperty = "wardrobeEntry"

type calendarEntry struct {
	key         string
	date        time.Time
	summary     string
	description string
	location    string
}

func (uc *implUseCase) ExportCalendar(ctx context.Context, input planner.ExportInput) (planner.ExportOutput, error) {
	if uc.calendar == nil {
		return planner.ExportOutput{}, planner.ErrCalendarDisabled
	}

	entries, err := uc.planEntries(ctx, input.PlanID)
	if err != nil {
		return planner.ExportOutput{}, err
	}
	if input.Occasions {
		entries = append(entries, uc.occasionEntries(ctx)...)
	}

	out := planner.ExportOutput{Links: []string{}}
	for _, e := range entries {
		existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID:      input.CalendarID,
			TimeMin:         e.date,
			TimeMax:         e.date.AddDate(0, 0, 1),
			PrivateProperty: entryProperty + "=" + e.key,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.ExportCalendar: %v", err)
			return out, err
		}
		if len(existing) > 0 {
			out.Skipped++
			continue
		}

		ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  input.CalendarID,
			Summary:     e.summary,
			Description: e.description,
			Location:    e.location,
			StartTime:   e.date,
			AllDay:      true,
			Timezone:    uc.dates.Location().String(),
			Private:     map[string]string{entryProperty: e.key},
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.ExportCalendar: %v", err)
			return out, err
		}
		out.Created++
		if ev.HtmlLink != "" {
			out.Links = append(out.Links, ev.HtmlLink)
		}
	}

	uc.l.Infof(ctx, "uc.ExportCalendar: created %d, skipped %d", out.Created, out.Skipped)
	return out, nil
}

func (uc *implUseCase) planEntries(ctx context.Context, planID string) ([]calendarEntry, error) {
	var plans []model.WeeklyPlan
	for _, p := range uc.WeeklyPlans(ctx) {
		if planID == "" || p.ID == planID {
			plans = append(plans, p)
		}
	}
	if planID != "" && len(plans) == 0 {
		return nil, planner.ErrPlanNotFound
	}

	var entries []calendarEntry
	for _, p := range plans {
		days, err := uc.schedule(p)
		if err != nil {
			uc.l.Warnf(ctx, "uc.ExportCalendar: skipping plan %s: %v", p.ID, err)
			continue
		}
		for _, d := range days {
			entries = append(entries, calendarEntry{
				key:         "plan:" + p.ID + ":" + d.Weekday,
				date:        d.Date,
				summary:     "Outfit: " + uc.outfitName(d.OutfitID),
				description: "Weekly plan: " + p.Name,
			})
		}
	}
	return entries, nil
}

func (uc *implUseCase) occasionEntries(ctx context.Context) []calendarEntry {
	var entries []calendarEntry
	for _, o := range uc.OccasionOutfits(ctx, "") {
		if o.EventDetails.Date == "" {
			continue
		}
		date, err := time.ParseInLocation(datemath.DateLayout, o.EventDetails.Date, uc.dates.Location())
		if err != nil {
			uc.l.Warnf(ctx, "uc.ExportCalendar: skipping occasion %s: %v", o.ID, err)
			continue
		}

		title := o.EventDetails.Name
		if title == "" {
			title = o.Occasion
		}
		outfitName := o.Outfit.Name
		if outfitName == "" {
			outfitName = uc.outfitName(o.Outfit.ID)
		}

		desc := []string{fmt.Sprintf("Outfit: %s", outfitName)}
		if o.EventDetails.Notes != "" {
			desc = append(desc, o.EventDetails.Notes)
		}
		entries = append(entries, calendarEntry{
			key:         "occasion:" + o.ID,
			date:        date,
			summary:     title,
			description: strings.Join(desc, "\n"),
			location:    o.EventDetails.Location,
		})
	}
	return entries
}

func (uc *implUseCase) outfitName(id model.ID) string {
	if uc.outfits != nil {
		if o, ok := uc.outfits.Get(string(id)); ok && o.Name != "" {
			return o.Name
		}
	}
	return "#" + string(id)
}
