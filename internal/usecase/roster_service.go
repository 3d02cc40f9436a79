package usecase

import (
	"context"
	"fmt"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/player"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/team"
)

// Roster is the club squad grouped for the team page. Groups keep the
// repository's jersey-number ordering.
type Roster struct {
	Team        team.Team
	Goalkeepers []player.Player
	Defenders   []player.Player
	Midfielders []player.Player
	Forwards    []player.Player
}

func (r Roster) PlayerCount() int {
	return len(r.Goalkeepers) + len(r.Defenders) + len(r.Midfielders) + len(r.Forwards)
}

type RosterService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewRosterService(teamRepo team.Repository, playerRepo player.Repository) *RosterService {
	return &RosterService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *RosterService) ClubRoster(ctx context.Context) (Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ClubRoster")
	defer span.End()

	club, exists, err := s.teamRepo.ClubTeam(ctx)
	if err != nil {
		return Roster{}, fmt.Errorf("get club team: %w", err)
	}
	if !exists {
		return Roster{}, fmt.Errorf("%w: club team is not configured", ErrNotFound)
	}

	players, err := s.playerRepo.ListByTeam(ctx, club.ID)
	if err != nil {
		return Roster{}, fmt.Errorf("list club players: %w", err)
	}

	out := Roster{Team: club}
	for _, p := range players {
		switch p.Position {
		case player.PositionGoalkeeper:
			out.Goalkeepers = append(out.Goalkeepers, p)
		case player.PositionDefender:
			out.Defenders = append(out.Defenders, p)
		case player.PositionMidfielder:
			out.Midfielders = append(out.Midfielders, p)
		case player.PositionForward:
			out.Forwards = append(out.Forwards, p)
		}
	}

	return out, nil
}
