package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/event"
)

type EventRepository struct {
	mu    sync.RWMutex
	items []event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	return &EventRepository{items: append([]event.Event(nil), events...)}
}

func (r *EventRepository) ListUpcoming(_ context.Context, now time.Time) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.items))
	for _, e := range r.items {
		if !e.Date.Before(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out, nil
}

func (r *EventRepository) GetByID(_ context.Context, id int64) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.ID == id {
			return e, true, nil
		}
	}

	return event.Event{}, false, nil
}
