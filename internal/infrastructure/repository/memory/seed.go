package memory

import (
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/clubinfo"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/event"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/gallery"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/league"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/mainpage"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/management"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/news"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/player"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/standing"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/team"
)

// Store bundles every repository backed by seeded in-memory data. Used for
// local development without a database and as a fixture set in tests.
type Store struct {
	Leagues    *LeagueRepository
	Teams      *TeamRepository
	Players    *PlayerRepository
	Management *ManagementRepository
	News       *NewsRepository
	Matches    *MatchRepository
	Standings  *StandingRepository
	Events     *EventRepository
	Gallery    *GalleryRepository
	Visits     *VisitRepository
	ClubInfo   *ClubInfoRepository
	MainPage   *MainPageRepository
	Calendar   *CalendarSettingsRepository
}

func NewSeededStore(now time.Time) *Store {
	leagueID := int64(1)
	founded1932 := 1932

	leagues := []league.League{
		{ID: 1, Name: "Okresní přebor Opava", Season: "2025/2026", Description: "Mistrovská soutěž mužů."},
	}

	teams := []team.Team{
		{ID: 1, LeagueID: &leagueID, Name: "TJ Hlavnice", City: "Hlavnice", FoundedYear: &founded1932, IsClubTeam: true},
		{ID: 2, LeagueID: &leagueID, Name: "Sokol Březová", City: "Březová"},
		{ID: 3, LeagueID: &leagueID, Name: "TJ Slavia Malé Hoštice", City: "Malé Hoštice"},
		{ID: 4, LeagueID: &leagueID, Name: "FK Jakartovice", City: "Jakartovice"},
	}

	players := []player.Player{
		{ID: 1, TeamID: 1, JerseyNumber: 1, FirstName: "Petr", LastName: "Novák", Position: player.PositionGoalkeeper},
		{ID: 2, TeamID: 1, JerseyNumber: 4, FirstName: "Jan", LastName: "Svoboda", Position: player.PositionDefender},
		{ID: 3, TeamID: 1, JerseyNumber: 8, FirstName: "Tomáš", LastName: "Dvořák", Position: player.PositionMidfielder, Goals: 3},
		{ID: 4, TeamID: 1, JerseyNumber: 9, FirstName: "Lukáš", LastName: "Černý", Position: player.PositionForward, Goals: 11, YellowCards: 2},
		{ID: 5, TeamID: 1, JerseyNumber: 11, FirstName: "Martin", LastName: "Procházka", Position: player.PositionForward, Goals: 6},
	}

	members := []management.Member{
		{ID: 1, FirstName: "Josef", LastName: "Kučera", Role: management.RolePresident, DisplayOrder: 1},
		{ID: 2, FirstName: "Pavel", LastName: "Veselý", Role: management.RoleCoach, DisplayOrder: 2},
		{ID: 3, FirstName: "Marie", LastName: "Horáková", Role: management.RoleTreasurer, DisplayOrder: 3},
	}

	articles := []news.Article{
		{ID: 1, Title: "Výhra v derby s Březovou", Content: "<p>Tři body zůstávají doma.</p>", Author: "Josef Kučera", Published: true, IsFeatured: true, CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now.Add(-72 * time.Hour)},
		{ID: 2, Title: "Zahájení jarní přípravy", Content: "<p>Trénujeme od úterý.</p>", Author: "Pavel Veselý", Published: true, CreatedAt: now.Add(-24 * time.Hour), UpdatedAt: now.Add(-24 * time.Hour)},
		{ID: 3, Title: "Rozpis brigád (koncept)", Content: "<p>Zatím nezveřejňovat.</p>", Published: false, CreatedAt: now, UpdatedAt: now},
	}

	score := func(v int) *int { return &v }
	matches := []match.Match{
		{
			ID: 1, LeagueID: 1,
			Home: match.Side{TeamID: 1, Name: "TJ Hlavnice", IsClubTeam: true},
			Away: match.Side{TeamID: 2, Name: "Sokol Březová"},
			Date: now.Add(-7 * 24 * time.Hour), HomeScore: score(3), AwayScore: score(1),
			Location: "Hlavnice",
		},
		{
			ID: 2, LeagueID: 1,
			Home: match.Side{TeamID: 3, Name: "TJ Slavia Malé Hoštice"},
			Away: match.Side{TeamID: 1, Name: "TJ Hlavnice", IsClubTeam: true},
			Date: now.Add(7 * 24 * time.Hour),
			Location: "Malé Hoštice",
		},
		{
			ID: 3, LeagueID: 1,
			Home: match.Side{TeamID: 1, Name: "TJ Hlavnice", IsClubTeam: true},
			Away: match.Side{TeamID: 4, Name: "FK Jakartovice"},
			Date: now.Add(14 * 24 * time.Hour),
			Location: "Hlavnice",
		},
	}

	standings := []standing.Standing{
		{LeagueID: 1, TeamID: 3, TeamName: "TJ Slavia Malé Hoštice", Position: 1, Played: 12, Won: 9, Drawn: 2, Lost: 1, GoalsFor: 31, GoalsAgainst: 12, Points: 29},
		{LeagueID: 1, TeamID: 1, TeamName: "TJ Hlavnice", IsClubTeam: true, Position: 2, Played: 12, Won: 8, Drawn: 2, Lost: 2, GoalsFor: 27, GoalsAgainst: 14, Points: 26},
		{LeagueID: 1, TeamID: 2, TeamName: "Sokol Březová", Position: 3, Played: 12, Won: 6, Drawn: 3, Lost: 3, GoalsFor: 22, GoalsAgainst: 17, Points: 21},
		{LeagueID: 1, TeamID: 4, TeamName: "FK Jakartovice", Position: 4, Played: 12, Won: 3, Drawn: 1, Lost: 8, GoalsFor: 13, GoalsAgainst: 29, Points: 10},
	}

	events := []event.Event{
		{ID: 1, Title: "Valná hromada", Description: "Výroční schůze klubu.", Date: now.Add(10 * 24 * time.Hour), Location: "Kulturní dům Hlavnice"},
		{ID: 2, Title: "Pouťový turnaj", Date: now.Add(40 * 24 * time.Hour), Location: "Hřiště Hlavnice"},
	}

	albums := []gallery.Album{
		{ID: 1, Title: "Podzim 2025", Description: "Momentky z podzimní části sezóny.", CreatedAt: now.Add(-30 * 24 * time.Hour)},
	}
	photos := []gallery.Photo{
		{ID: 1, AlbumID: 1, Title: "Podzim 1", ImagePath: "gallery/podzim-1.jpg", UploadedAt: now.Add(-29 * 24 * time.Hour)},
		{ID: 2, AlbumID: 1, Title: "Podzim 2", ImagePath: "gallery/podzim-2.jpg", UploadedAt: now.Add(-29 * 24 * time.Hour)},
	}

	info := &clubinfo.ClubInfo{
		Name:         "TJ Hlavnice",
		FoundedYear:  1932,
		History:      "Tělovýchovná jednota Hlavnice byla založena roku 1932.",
		Address:      "Hlavnice 103, 747 52 Hlavnice",
		ContactEmail: "info@tjhlavnice.cz",
	}

	mainPage := &mainpage.Config{FeaturedNewsIDs: []int64{1}}

	return &Store{
		Leagues:    NewLeagueRepository(leagues),
		Teams:      NewTeamRepository(teams),
		Players:    NewPlayerRepository(players),
		Management: NewManagementRepository(members),
		News:       NewNewsRepository(articles),
		Matches:    NewMatchRepository(matches),
		Standings:  NewStandingRepository(standings),
		Events:     NewEventRepository(events),
		Gallery:    NewGalleryRepository(albums, photos),
		Visits:     NewVisitRepository(),
		ClubInfo:   NewClubInfoRepository(info),
		MainPage:   NewMainPageRepository(mainPage),
		Calendar:   NewCalendarSettingsRepository(nil),
	}
}
