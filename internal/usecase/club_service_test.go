package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/clubinfo"
)

func TestClubProfileYears(t *testing.T) {
	repo := &fakeClubInfoRepo{
		info:   clubinfo.ClubInfo{Name: "TJ Hlavnice", FoundedYear: 1932},
		exists: true,
	}
	svc := NewClubService(repo)

	profile, err := svc.Profile(context.Background(), time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Years != 94 {
		t.Fatalf("years = %d, want 94", profile.Years)
	}
}

func TestClubProfileMissing(t *testing.T) {
	svc := NewClubService(&fakeClubInfoRepo{})

	_, err := svc.Profile(context.Background(), time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestYearsOfExistenceUnsetFoundedYear(t *testing.T) {
	info := clubinfo.ClubInfo{Name: "TJ Hlavnice"}
	if got := info.YearsOfExistence(time.Now()); got != 0 {
		t.Fatalf("years = %d, want 0", got)
	}
}
