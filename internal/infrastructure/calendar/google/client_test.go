package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchEventsMapsItems(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"id": "e1",
					"summary": "Mistrovský zápas",
					"location": "Hřiště Hlavnice",
					"htmlLink": "https://calendar.google.com/event?eid=e1",
					"start": {"dateTime": "2026-05-10T14:00:00+02:00"},
					"end": {"dateTime": "2026-05-10T16:00:00+02:00"}
				},
				{
					"id": "e2",
					"start": {"date": "2026-05-12"},
					"end": {"date": "2026-05-13"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	timeMin := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	events, err := client.FetchEvents(context.Background(), "klub@group.calendar.google.com", "key-123", timeMin, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/calendars/klub@group.calendar.google.com/events" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	for key, want := range map[string]string{
		"key":          "key-123",
		"timeMin":      "2026-05-01T00:00:00Z",
		"maxResults":   "25",
		"singleEvents": "true",
		"orderBy":      "startTime",
	} {
		if len(gotQuery[key]) != 1 || gotQuery[key][0] != want {
			t.Fatalf("unexpected query %s: %v", key, gotQuery[key])
		}
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.Title != "Mistrovský zápas" || first.AllDay {
		t.Fatalf("unexpected first event: %+v", first)
	}
	if !first.Start.Equal(time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %s", first.Start)
	}

	second := events[1]
	if second.Title != "Bez názvu" {
		t.Fatalf("untitled event should get default title, got %s", second.Title)
	}
	if !second.AllDay {
		t.Fatalf("bare date event should be all-day")
	}
}

func TestFetchEventsStatusMessages(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{status: http.StatusForbidden, want: "Nemáte oprávnění k tomuto kalendáři."},
		{status: http.StatusNotFound, want: "Kalendář nebyl nalezen."},
		{status: http.StatusBadRequest, want: "Neplatné ID kalendáře."},
		{status: http.StatusInternalServerError, want: "Nepodařilo se načíst události kalendáře."},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(`{"error": {"message": "boom"}}`))
		}))

		client := NewClient(ClientConfig{BaseURL: server.URL})
		_, err := client.FetchEvents(context.Background(), "klub@group.calendar.google.com", "key-123", time.Now(), 10)
		server.Close()

		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if err.Error() != tt.want {
			t.Fatalf("status %d: unexpected message: %s", tt.status, err.Error())
		}
	}
}

func TestFetchEventsConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})
	_, err := client.FetchEvents(context.Background(), "klub@group.calendar.google.com", "key-123", time.Now(), 10)
	if err == nil {
		t.Fatalf("expected error for closed server")
	}
	if err.Error() != "Nepodařilo se připojit ke službě Google Kalendář." {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestFetchEventsRequiresCalendarID(t *testing.T) {
	client := NewClient(ClientConfig{})

	_, err := client.FetchEvents(context.Background(), "  ", "key-123", time.Now(), 10)
	if err == nil {
		t.Fatalf("expected error for empty calendar id")
	}
	if err.Error() != "Neplatné ID kalendáře." {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
