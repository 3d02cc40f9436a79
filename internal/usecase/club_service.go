package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/clubinfo"
)

// ClubProfile is the club page payload.
type ClubProfile struct {
	Info  clubinfo.ClubInfo
	Years int
}

type ClubService struct {
	clubRepo clubinfo.Repository
}

func NewClubService(clubRepo clubinfo.Repository) *ClubService {
	return &ClubService{clubRepo: clubRepo}
}

func (s *ClubService) Profile(ctx context.Context, now time.Time) (ClubProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Profile")
	defer span.End()

	info, exists, err := s.clubRepo.Get(ctx)
	if err != nil {
		return ClubProfile{}, fmt.Errorf("get club info: %w", err)
	}
	if !exists {
		return ClubProfile{}, fmt.Errorf("%w: club info is not configured", ErrNotFound)
	}

	return ClubProfile{
		Info:  info,
		Years: info.YearsOfExistence(now),
	}, nil
}
