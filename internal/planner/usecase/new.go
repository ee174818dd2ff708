package usecase

import (
	"context"
	"time"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/planner"
	"wardrobe-planner/pkg/datemath"
	"wardrobe-planner/pkg/gcalendar"
	"wardrobe-planner/pkg/localstore"
	pkgLog "wardrobe-planner/pkg/log"
)

// Calendar is the part of the calendar client the planner uses.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// OutfitLookup resolves outfit ids to names for calendar entries.
type OutfitLookup interface {
	Get(id string) (model.Outfit, bool)
}

type implUseCase struct {
	l        pkgLog.Logger
	store    *localstore.Bridge
	dates    *datemath.Parser
	calendar Calendar
	outfits  OutfitLookup
	now      func() time.Time
}

// New creates a new planner UseCase instance. calendar and outfits may be
// nil; export then fails with ErrCalendarDisabled and events are titled by
// outfit id.
func New(
	l pkgLog.Logger,
	store *localstore.Bridge,
	dates *datemath.Parser,
	calendar Calendar,
	outfits OutfitLookup,
) planner.UseCase {
	return &implUseCase{
		l:        l,
		store:    store,
		dates:    dates,
		calendar: calendar,
		outfits:  outfits,
		now:      time.Now,
	}
}
