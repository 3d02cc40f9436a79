package google

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/calendar"
	"github.com/liborpaciorek/tjhlavnice/internal/platform/logging"
)

const (
	defaultBaseURL = "https://www.googleapis.com/calendar/v3"
	defaultTimeout = 10 * time.Second

	untitledEvent = "Bez názvu"
)

// Czech user-facing failure messages, rendered on the public calendar page.
const (
	msgPermissionDenied = "Nemáte oprávnění k tomuto kalendáři."
	msgCalendarMissing  = "Kalendář nebyl nalezen."
	msgBadCalendarID    = "Neplatné ID kalendáře."
	msgFetchFailed      = "Nepodařilo se načíst události kalendáře."
	msgConnectFailed    = "Nepodařilo se připojit ke službě Google Kalendář."
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client reads events from the Google Calendar v3 API using a public API
// key. Errors it returns carry Czech messages meant for direct display.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

type eventsEnvelope struct {
	Items []eventItem `json:"items"`
}

type eventItem struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	HTMLLink    string    `json:"htmlLink"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
}

type eventTime struct {
	Date     string `json:"date"`
	DateTime string `json:"dateTime"`
}

func (c *Client) FetchEvents(ctx context.Context, calendarID, apiKey string, timeMin time.Time, maxResults int) ([]calendar.Event, error) {
	calendarID = strings.TrimSpace(calendarID)
	if calendarID == "" {
		return nil, crerr.New(msgBadCalendarID)
	}

	values := url.Values{}
	values.Set("key", apiKey)
	values.Set("timeMin", timeMin.UTC().Format(time.RFC3339))
	values.Set("singleEvents", "true")
	values.Set("orderBy", "startTime")
	if maxResults > 0 {
		values.Set("maxResults", strconv.Itoa(maxResults))
	}

	fullURL := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(calendarID), values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, msgFetchFailed)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "google calendar request failed", "error", err)
		return nil, crerr.New(msgConnectFailed)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, crerr.Wrap(err, msgFetchFailed)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "google calendar returned error status",
			"status", resp.StatusCode,
			"body", abbreviateBody(raw),
		)
		return nil, crerr.New(statusMessage(resp.StatusCode))
	}

	var envelope eventsEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, crerr.Wrap(err, msgFetchFailed)
	}

	out := make([]calendar.Event, 0, len(envelope.Items))
	for _, item := range envelope.Items {
		out = append(out, mapEvent(item))
	}

	c.logger.DebugContext(ctx, "google calendar events fetched", "count", len(out))

	return out, nil
}

func statusMessage(status int) string {
	switch status {
	case http.StatusForbidden:
		return msgPermissionDenied
	case http.StatusNotFound:
		return msgCalendarMissing
	case http.StatusBadRequest:
		return msgBadCalendarID
	default:
		return msgFetchFailed
	}
}

func mapEvent(item eventItem) calendar.Event {
	title := strings.TrimSpace(item.Summary)
	if title == "" {
		title = untitledEvent
	}

	start, allDay := parseEventTime(item.Start)
	end, _ := parseEventTime(item.End)

	return calendar.Event{
		ID:          item.ID,
		Title:       title,
		Description: item.Description,
		Location:    item.Location,
		Start:       start,
		End:         end,
		AllDay:      allDay,
		HTMLLink:    item.HTMLLink,
	}
}

// parseEventTime reads one API time object. All-day events carry a bare
// date; timed events carry a RFC3339 dateTime.
func parseEventTime(v eventTime) (time.Time, bool) {
	if v.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, v.DateTime)
		if err == nil {
			return parsed, false
		}
	}
	if v.Date != "" {
		parsed, err := time.Parse("2006-01-02", v.Date)
		if err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

func abbreviateBody(raw []byte) string {
	const limit = 512
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit]) + "..."
}
