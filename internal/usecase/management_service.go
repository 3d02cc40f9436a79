package usecase

import (
	"context"
	"fmt"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/management"
)

type ManagementService struct {
	memberRepo management.Repository
}

func NewManagementService(memberRepo management.Repository) *ManagementService {
	return &ManagementService{memberRepo: memberRepo}
}

func (s *ManagementService) List(ctx context.Context) ([]management.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagementService.List")
	defer span.End()

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list management members: %w", err)
	}

	return members, nil
}
