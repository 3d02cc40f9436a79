package visit

import "time"

// MaxUserAgentLength bounds the stored user agent string.
const MaxUserAgentLength = 500

// PageVisit is one append-only access log row for a public page.
type PageVisit struct {
	ID        int64
	PageName  string
	IPAddress string
	UserAgent string
	Timestamp time.Time
}
