package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/clubinfo"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/mainpage"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/news"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/standing"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/team"
)

const (
	homeLatestNewsLimit    = 3
	homeRecentResultsLimit = 2
	homeTableWindowRadius  = 2
)

// Home aggregates everything the landing page shows in one read.
type Home struct {
	FeaturedNews  []news.Article
	LatestNews    []news.Article
	NextMatch     *match.Match
	RecentResults []match.Match
	TableWindow   []standing.Standing
	ClubInfo      *clubinfo.ClubInfo
}

type HomeService struct {
	newsRepo     news.Repository
	mainpageRepo mainpage.Repository
	matchRepo    match.Repository
	standingRepo standing.Repository
	teamRepo     team.Repository
	clubRepo     clubinfo.Repository
}

func NewHomeService(
	newsRepo news.Repository,
	mainpageRepo mainpage.Repository,
	matchRepo match.Repository,
	standingRepo standing.Repository,
	teamRepo team.Repository,
	clubRepo clubinfo.Repository,
) *HomeService {
	return &HomeService{
		newsRepo:     newsRepo,
		mainpageRepo: mainpageRepo,
		matchRepo:    matchRepo,
		standingRepo: standingRepo,
		teamRepo:     teamRepo,
		clubRepo:     clubRepo,
	}
}

func (s *HomeService) Get(ctx context.Context, now time.Time) (Home, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HomeService.Get")
	defer span.End()

	out := Home{}

	featured, err := s.featuredNews(ctx)
	if err != nil {
		return Home{}, err
	}
	out.FeaturedNews = featured

	latest, err := s.newsRepo.ListPublished(ctx, homeLatestNewsLimit, 0)
	if err != nil {
		return Home{}, fmt.Errorf("list latest news: %w", err)
	}
	out.LatestNews = latest

	next, exists, err := s.matchRepo.NextClubMatch(ctx, now)
	if err != nil {
		return Home{}, fmt.Errorf("get next club match: %w", err)
	}
	if exists {
		out.NextMatch = &next
	}

	recent, err := s.matchRepo.ListRecentClub(ctx, now, 0, homeRecentResultsLimit)
	if err != nil {
		return Home{}, fmt.Errorf("list recent club matches: %w", err)
	}
	out.RecentResults = recent

	window, err := s.tableWindow(ctx)
	if err != nil {
		return Home{}, err
	}
	out.TableWindow = window

	info, exists, err := s.clubRepo.Get(ctx)
	if err != nil {
		return Home{}, fmt.Errorf("get club info: %w", err)
	}
	if exists {
		out.ClubInfo = &info
	}

	return out, nil
}

// featuredNews resolves the configured ids against published articles,
// preserving the configured order and skipping dangling or unpublished ids.
func (s *HomeService) featuredNews(ctx context.Context) ([]news.Article, error) {
	cfg, exists, err := s.mainpageRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get main page config: %w", err)
	}
	if !exists || len(cfg.FeaturedNewsIDs) == 0 {
		return nil, nil
	}

	out := make([]news.Article, 0, len(cfg.FeaturedNewsIDs))
	for _, id := range cfg.FeaturedNewsIDs {
		article, found, err := s.newsRepo.GetPublishedByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get featured article %d: %w", id, err)
		}
		if !found {
			continue
		}
		out = append(out, article)
	}

	return out, nil
}

// tableWindow returns the club's row plus two neighbours either side of it.
// Without a club team or standing the home page shows no table at all.
func (s *HomeService) tableWindow(ctx context.Context) ([]standing.Standing, error) {
	club, exists, err := s.teamRepo.ClubTeam(ctx)
	if err != nil {
		return nil, fmt.Errorf("get club team: %w", err)
	}
	if !exists {
		return nil, nil
	}

	row, found, err := s.standingRepo.GetByTeam(ctx, club.ID)
	if err != nil {
		return nil, fmt.Errorf("get club standing: %w", err)
	}
	if !found {
		return nil, nil
	}

	minPos := row.Position - homeTableWindowRadius
	if minPos < 1 {
		minPos = 1
	}
	maxPos := row.Position + homeTableWindowRadius

	window, err := s.standingRepo.ListWindow(ctx, row.LeagueID, minPos, maxPos)
	if err != nil {
		return nil, fmt.Errorf("list standing window: %w", err)
	}

	return window, nil
}
