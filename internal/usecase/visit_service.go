package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/visit"
)

type VisitService struct {
	visitRepo visit.Repository
	now       func() time.Time
}

func NewVisitService(visitRepo visit.Repository) *VisitService {
	return &VisitService{
		visitRepo: visitRepo,
		now:       time.Now,
	}
}

// Record appends one page visit. Overlong user agents are truncated to the
// stored column width rather than rejected.
func (s *VisitService) Record(ctx context.Context, pageName, ipAddress, userAgent string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.VisitService.Record")
	defer span.End()

	pageName = strings.TrimSpace(pageName)
	if pageName == "" {
		return fmt.Errorf("%w: page name is required", ErrInvalidInput)
	}

	if len(userAgent) > visit.MaxUserAgentLength {
		userAgent = truncateToRune(userAgent, visit.MaxUserAgentLength)
	}

	v := visit.PageVisit{
		PageName:  pageName,
		IPAddress: strings.TrimSpace(ipAddress),
		UserAgent: userAgent,
		Timestamp: s.now().UTC(),
	}

	if err := s.visitRepo.Insert(ctx, v); err != nil {
		return fmt.Errorf("insert page visit: %w", err)
	}

	return nil
}

// truncateToRune cuts s to at most max bytes without splitting a UTF-8
// rune at the boundary.
func truncateToRune(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
