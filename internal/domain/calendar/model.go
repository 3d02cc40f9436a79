package calendar

import (
	"strings"
	"time"
)

// Settings configures the external Google Calendar integration. The table
// holds at most one row, keyed by a fixed singleton key.
type Settings struct {
	Name           string
	CalendarID     string
	APIKey         string
	IsActive       bool
	MaxEvents      int
	ShowPastEvents bool
	PastEventsDays int
}

// Configured reports whether the settings carry everything needed for a
// fetch. Inactive or incomplete settings short-circuit the calendar page.
func (s Settings) Configured() bool {
	return s.IsActive &&
		strings.TrimSpace(s.CalendarID) != "" &&
		strings.TrimSpace(s.APIKey) != ""
}

// TimeMin computes the lower bound of the fetch window.
func (s Settings) TimeMin(now time.Time) time.Time {
	if s.ShowPastEvents && s.PastEventsDays > 0 {
		return now.AddDate(0, 0, -s.PastEventsDays)
	}
	return now
}

// Event is one normalized external calendar entry.
type Event struct {
	ID          string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	HTMLLink    string
}
