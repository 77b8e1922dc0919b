package gcalendar

import "time"

// EventRequest describes an event to write. ID is required and may only use
// the characters a-v and 0-9.
type EventRequest struct {
	CalendarID  string
	ID          string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Bangkok"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
