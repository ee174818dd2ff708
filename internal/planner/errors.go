package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrMissingPlanName  = errors.New("plan name is required")
	ErrNoDays           = errors.New("assign an outfit to at least one day")
	ErrUnknownWeekday   = errors.New("unknown weekday")
	ErrDuplicateDay     = errors.New("weekday assigned more than once")
	ErrInvalidDate      = errors.New("invalid date")
	ErrPlanNotFound     = errors.New("weekly plan not found")
	ErrMissingOccasion  = errors.New("occasion is required")
	ErrMissingOutfit    = errors.New("choose an outfit for the occasion")
	ErrOccasionNotFound = errors.New("occasion outfit not found")
	ErrCalendarDisabled = errors.New("calendar export is not configured")
)
