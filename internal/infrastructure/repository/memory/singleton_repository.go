package memory

import (
	"context"
	"sync"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/calendar"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/clubinfo"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/mainpage"
)

type ClubInfoRepository struct {
	mu     sync.RWMutex
	info   clubinfo.ClubInfo
	exists bool
}

func NewClubInfoRepository(info *clubinfo.ClubInfo) *ClubInfoRepository {
	r := &ClubInfoRepository{}
	if info != nil {
		r.info = *info
		r.exists = true
	}
	return r
}

func (r *ClubInfoRepository) Get(_ context.Context) (clubinfo.ClubInfo, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.info, r.exists, nil
}

func (r *ClubInfoRepository) Save(_ context.Context, info clubinfo.ClubInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.info = info
	r.exists = true
	return nil
}

type MainPageRepository struct {
	mu     sync.RWMutex
	cfg    mainpage.Config
	exists bool
}

func NewMainPageRepository(cfg *mainpage.Config) *MainPageRepository {
	r := &MainPageRepository{}
	if cfg != nil {
		r.cfg = *cfg
		r.exists = true
	}
	return r
}

func (r *MainPageRepository) Get(_ context.Context) (mainpage.Config, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cfg, r.exists, nil
}

func (r *MainPageRepository) Save(_ context.Context, cfg mainpage.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cfg = cfg
	r.exists = true
	return nil
}

type CalendarSettingsRepository struct {
	mu       sync.RWMutex
	settings calendar.Settings
	exists   bool
}

func NewCalendarSettingsRepository(settings *calendar.Settings) *CalendarSettingsRepository {
	r := &CalendarSettingsRepository{}
	if settings != nil {
		r.settings = *settings
		r.exists = true
	}
	return r
}

func (r *CalendarSettingsRepository) Get(_ context.Context) (calendar.Settings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings, r.exists, nil
}

func (r *CalendarSettingsRepository) Save(_ context.Context, settings calendar.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = settings
	r.exists = true
	return nil
}
