package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownDate    = errors.New("datemath: unrecognised date")
	ErrUnknownWeekday = errors.New("datemath: unknown weekday")
)

var inDuration = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative and absolute date strings to calendar days.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Paris". An empty name means UTC.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location { return p.location }

// Parse resolves s against baseTime to midnight of the matching day. It
// accepts YYYY-MM-DD, "today", "tomorrow", "yesterday", "in N days|weeks|months",
// "next <weekday>" and a bare weekday name (the next such day, today included).
func (p *Parser) Parse(s string, baseTime time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if t, err := time.ParseInLocation(DateLayout, s, p.location); err == nil {
		return t, nil
	}

	switch s {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(s, "in ") {
		return p.parseInDuration(s, baseTime)
	}

	if strings.HasPrefix(s, "next ") {
		wd, err := weekdayOf(strings.TrimPrefix(s, "next "))
		if err != nil {
			return time.Time{}, err
		}
		return p.nextWeekday(baseTime, wd, false), nil
	}

	if wd, err := weekdayOf(s); err == nil {
		return p.nextWeekday(baseTime, wd, true), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDate, s)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(s string, baseTime time.Time) (time.Time, error) {
	matches := inDuration.FindStringSubmatch(s)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownDate, s)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// nextWeekday returns the next wd after baseTime. With inclusive set, today
// counts when it is already wd.
func (p *Parser) nextWeekday(baseTime time.Time, wd time.Weekday, inclusive bool) time.Time {
	base := p.startOfDay(baseTime)
	daysUntil := int(wd - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && !inclusive) {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// WeekStarting returns the seven days from start in weekday-key order
// starting at start's own weekday.
func (p *Parser) WeekStarting(start time.Time) []Day {
	start = p.startOfDay(start)
	days := make([]Day, 7)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = Day{Key: strings.ToLower(d.Weekday().String()), Date: d}
	}
	return days
}

// DateFor returns the date of the weekday named key within the week that
// starts at start.
func (p *Parser) DateFor(start time.Time, key string) (time.Time, error) {
	wd, err := weekdayOf(key)
	if err != nil {
		return time.Time{}, err
	}
	return p.nextWeekday(start, wd, true), nil
}

// Format renders t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) Format(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// weekdayOf accepts full names and three-letter-or-longer prefixes.
func weekdayOf(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if wd, ok := weekdays[name]; ok {
		return wd, nil
	}
	if len(name) >= 3 {
		for full, wd := range weekdays {
			if strings.HasPrefix(full, name) {
				return wd, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
}
