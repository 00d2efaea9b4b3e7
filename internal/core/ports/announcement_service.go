package ports

import (
	"context"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// CreateAnnouncementInput carries all data needed to post an announcement.
// Club comes from the route, CallerRole and Actor from the validated token.
type CreateAnnouncementInput struct {
	Club       domain.Club
	Title      string
	Message    string
	CallerRole domain.Role
	Actor      string
}

// DeleteAnnouncementInput identifies an announcement to remove.
type DeleteAnnouncementInput struct {
	Club       domain.Club
	ID         string
	CallerRole domain.Role
	Actor      string
}

// AnnouncementService defines use-case operations for club announcements.
type AnnouncementService interface {
	List(ctx context.Context, club domain.Club) ([]domain.Announcement, error)
	Create(ctx context.Context, in CreateAnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, in DeleteAnnouncementInput) error
}
