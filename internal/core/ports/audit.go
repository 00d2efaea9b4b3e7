package ports

import (
	"context"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// AuditRepository defines persistence for the announcement activity trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	// ListByClub returns the most recent events for a club, newest first.
	ListByClub(ctx context.Context, club domain.Club, limit int) ([]domain.AuditEvent, error)
}

// AuditService consumes audit events off the dispatcher and persists them.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent) error
	Recent(ctx context.Context, club domain.Club, limit int) ([]domain.AuditEvent, error)
}
