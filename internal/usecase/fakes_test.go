package usecase

import (
	"context"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/calendar"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/clubinfo"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/event"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/gallery"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/league"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/mainpage"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/news"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/player"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/standing"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/team"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/visit"
)

type fakeNewsRepo struct {
	articles []news.Article
	err      error
}

func (f *fakeNewsRepo) ListPublished(_ context.Context, limit, offset int) ([]news.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.articles) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.articles) {
		end = len(f.articles)
	}
	return f.articles[offset:end], nil
}

func (f *fakeNewsRepo) CountPublished(context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.articles), nil
}

func (f *fakeNewsRepo) GetPublishedByID(_ context.Context, id int64) (news.Article, bool, error) {
	if f.err != nil {
		return news.Article{}, false, f.err
	}
	for _, a := range f.articles {
		if a.ID == id {
			return a, true, nil
		}
	}
	return news.Article{}, false, nil
}

type fakeMainpageRepo struct {
	cfg    mainpage.Config
	exists bool
}

func (f *fakeMainpageRepo) Get(context.Context) (mainpage.Config, bool, error) {
	return f.cfg, f.exists, nil
}

func (f *fakeMainpageRepo) Save(_ context.Context, cfg mainpage.Config) error {
	f.cfg = cfg
	f.exists = true
	return nil
}

type fakeMatchRepo struct {
	upcoming []match.Match
	recent   []match.Match
	next     *match.Match
}

func (f *fakeMatchRepo) ListUpcomingClub(_ context.Context, _ time.Time, leagueID int64, limit int) ([]match.Match, error) {
	return filterMatches(f.upcoming, leagueID, limit), nil
}

func (f *fakeMatchRepo) ListRecentClub(_ context.Context, _ time.Time, leagueID int64, limit int) ([]match.Match, error) {
	return filterMatches(f.recent, leagueID, limit), nil
}

func (f *fakeMatchRepo) NextClubMatch(context.Context, time.Time) (match.Match, bool, error) {
	if f.next == nil {
		return match.Match{}, false, nil
	}
	return *f.next, true, nil
}

func filterMatches(items []match.Match, leagueID int64, limit int) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, m := range items {
		if leagueID > 0 && m.LeagueID != leagueID {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

type fakeLeagueRepo struct {
	leagues []league.League
}

func (f *fakeLeagueRepo) List(context.Context) ([]league.League, error) {
	return f.leagues, nil
}

func (f *fakeLeagueRepo) GetByID(_ context.Context, id int64) (league.League, bool, error) {
	for _, l := range f.leagues {
		if l.ID == id {
			return l, true, nil
		}
	}
	return league.League{}, false, nil
}

type fakeStandingRepo struct {
	rows []standing.Standing
}

func (f *fakeStandingRepo) ListByLeague(_ context.Context, leagueID int64) ([]standing.Standing, error) {
	out := make([]standing.Standing, 0, len(f.rows))
	for _, row := range f.rows {
		if row.LeagueID == leagueID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStandingRepo) GetByTeam(_ context.Context, teamID int64) (standing.Standing, bool, error) {
	for _, row := range f.rows {
		if row.TeamID == teamID {
			return row, true, nil
		}
	}
	return standing.Standing{}, false, nil
}

func (f *fakeStandingRepo) ListWindow(_ context.Context, leagueID int64, minPos, maxPos int) ([]standing.Standing, error) {
	out := make([]standing.Standing, 0, len(f.rows))
	for _, row := range f.rows {
		if row.LeagueID == leagueID && row.Position >= minPos && row.Position <= maxPos {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeTeamRepo struct {
	teams []team.Team
}

func (f *fakeTeamRepo) List(context.Context) ([]team.Team, error) {
	return f.teams, nil
}

func (f *fakeTeamRepo) ListByLeague(_ context.Context, leagueID int64) ([]team.Team, error) {
	out := make([]team.Team, 0, len(f.teams))
	for _, t := range f.teams {
		if t.LeagueID != nil && *t.LeagueID == leagueID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	for _, t := range f.teams {
		if t.ID == id {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (f *fakeTeamRepo) ClubTeam(context.Context) (team.Team, bool, error) {
	for _, t := range f.teams {
		if t.IsClubTeam {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

type fakePlayerRepo struct {
	players []player.Player
}

func (f *fakePlayerRepo) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	out := make([]player.Player, 0, len(f.players))
	for _, p := range f.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeGalleryRepo struct {
	albums   []gallery.Album
	photos   []gallery.Photo
	nextID   int64
	inserted []gallery.Photo
}

func (f *fakeGalleryRepo) ListAlbums(_ context.Context, limit, offset int) ([]gallery.Album, error) {
	if offset >= len(f.albums) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.albums) {
		end = len(f.albums)
	}
	return f.albums[offset:end], nil
}

func (f *fakeGalleryRepo) CountAlbums(context.Context) (int, error) {
	return len(f.albums), nil
}

func (f *fakeGalleryRepo) GetAlbum(_ context.Context, id int64) (gallery.Album, bool, error) {
	for _, a := range f.albums {
		if a.ID == id {
			return a, true, nil
		}
	}
	return gallery.Album{}, false, nil
}

func (f *fakeGalleryRepo) ListPhotosByAlbum(_ context.Context, albumID int64, limit, offset int) ([]gallery.Photo, error) {
	matched := make([]gallery.Photo, 0, len(f.photos))
	for _, p := range f.photos {
		if p.AlbumID == albumID {
			matched = append(matched, p)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeGalleryRepo) CountPhotosByAlbum(_ context.Context, albumID int64) (int, error) {
	count := 0
	for _, p := range f.photos {
		if p.AlbumID == albumID {
			count++
		}
	}
	return count, nil
}

func (f *fakeGalleryRepo) InsertPhoto(_ context.Context, photo gallery.Photo) (int64, error) {
	f.nextID++
	photo.ID = f.nextID
	f.photos = append(f.photos, photo)
	f.inserted = append(f.inserted, photo)
	return photo.ID, nil
}

type fakeEventRepo struct {
	events []event.Event
}

func (f *fakeEventRepo) ListUpcoming(_ context.Context, now time.Time) ([]event.Event, error) {
	out := make([]event.Event, 0, len(f.events))
	for _, e := range f.events {
		if !e.Date.Before(now) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (event.Event, bool, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, true, nil
		}
	}
	return event.Event{}, false, nil
}

type fakeCalendarSettingsRepo struct {
	settings calendar.Settings
	exists   bool
}

func (f *fakeCalendarSettingsRepo) Get(context.Context) (calendar.Settings, bool, error) {
	return f.settings, f.exists, nil
}

func (f *fakeCalendarSettingsRepo) Save(_ context.Context, s calendar.Settings) error {
	f.settings = s
	f.exists = true
	return nil
}

type fakeEventsFetcher struct {
	events    []calendar.Event
	err       error
	lastID    string
	lastKey   string
	lastMin   time.Time
	lastMax   int
	callCount int
}

func (f *fakeEventsFetcher) FetchEvents(_ context.Context, calendarID, apiKey string, timeMin time.Time, maxResults int) ([]calendar.Event, error) {
	f.callCount++
	f.lastID = calendarID
	f.lastKey = apiKey
	f.lastMin = timeMin
	f.lastMax = maxResults
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

type fakeClubInfoRepo struct {
	info   clubinfo.ClubInfo
	exists bool
}

func (f *fakeClubInfoRepo) Get(context.Context) (clubinfo.ClubInfo, bool, error) {
	return f.info, f.exists, nil
}

func (f *fakeClubInfoRepo) Save(_ context.Context, info clubinfo.ClubInfo) error {
	f.info = info
	f.exists = true
	return nil
}

type fakeVisitRepo struct {
	visits []visit.PageVisit
	err    error
}

func (f *fakeVisitRepo) Insert(_ context.Context, v visit.PageVisit) error {
	if f.err != nil {
		return f.err
	}
	f.visits = append(f.visits, v)
	return nil
}
