package ports

import (
	"context"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// AnnouncementRepository defines persistence operations for one club-scoped
// announcement namespace. Implementations must keep namespaces isolated:
// an id is only resolvable within the club it was created in.
type AnnouncementRepository interface {
	// List returns all announcements for the club in insertion order.
	List(ctx context.Context, club domain.Club) ([]domain.Announcement, error)
	// Insert stores a new announcement and returns it with its assigned id.
	Insert(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	// Delete removes an announcement by id within the club's namespace.
	// An absent id yields domain.ErrAnnouncementNotFound.
	Delete(ctx context.Context, club domain.Club, id string) error
}
