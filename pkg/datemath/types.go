package datemath

import "time"

// DateLayout is the calendar-date format used in plans.
const DateLayout = "2006-01-02"

// Day is one resolved slot of a week.
type Day struct {
	Key  string // weekday key, e.g. "monday"
	Date time.Time
}
