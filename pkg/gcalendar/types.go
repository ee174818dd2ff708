package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool   // use StartTime's date only; EndTime is ignored
	Timezone    string // e.g. "Europe/Paris"

	// Private is stored as private extended properties, so the event can be
	// found again with ListEventsRequest.PrivateProperty.
	Private map[string]string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Location    string
	Private     map[string]string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID      string
	TimeMin         time.Time
	TimeMax         time.Time
	MaxResults      int64
	PrivateProperty string // "key=value" filter
}
