package event

import "time"

// Event is one club calendar entry, optionally tied to a match.
type Event struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	Location    string
	MatchID     *int64
}
