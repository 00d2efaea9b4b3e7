package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/techconnect/club-portal/internal/core/domain"
	"github.com/techconnect/club-portal/internal/core/ports"
)

// DedupChecker abstracts the duplicate-suppression store (Redis). Replayed
// events, e.g. after a dispatcher restart, are skipped silently.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, club domain.Club, action domain.AuditAction, id string) (bool, error)
	Mark(ctx context.Context, club domain.Club, action domain.AuditAction, id string) error
}

type auditService struct {
	repo  ports.AuditRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, dedup DedupChecker, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, dedup: dedup, log: log}
}

// Record deduplicates and persists a single audit event.
func (s *auditService) Record(ctx context.Context, event domain.AuditEvent) error {
	isDup, err := s.dedup.IsDuplicate(ctx, event.Club, event.Action, event.AnnouncementID)
	if err != nil {
		s.log.Warn().Err(err).Str("club", string(event.Club)).Msg("dedup check failed, recording anyway")
	} else if isDup {
		s.log.Debug().
			Str("club", string(event.Club)).
			Str("action", string(event.Action)).
			Str("id", event.AnnouncementID).
			Msg("duplicate audit event skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, event.Club, event.Action, event.AnnouncementID); markErr != nil {
		s.log.Warn().Err(markErr).Str("club", string(event.Club)).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}

	s.log.Info().
		Str("club", string(event.Club)).
		Str("action", string(event.Action)).
		Str("id", event.AnnouncementID).
		Msg("audit event recorded")
	return nil
}

// Recent returns the latest activity for a club, newest first.
func (s *auditService) Recent(ctx context.Context, club domain.Club, limit int) ([]domain.AuditEvent, error) {
	return s.repo.ListByClub(ctx, club, limit)
}
