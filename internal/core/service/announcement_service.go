package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/techconnect/club-portal/internal/core/domain"
	"github.com/techconnect/club-portal/internal/core/ports"
)

// ListCache abstracts the per-club list cache (Redis). A miss is not an
// error; cache failures must never fail the request.
type ListCache interface {
	Get(ctx context.Context, club domain.Club) ([]domain.Announcement, bool, error)
	Set(ctx context.Context, club domain.Club, items []domain.Announcement) error
	Invalidate(ctx context.Context, club domain.Club) error
}

// AuditPublisher enqueues audit events for asynchronous persistence.
type AuditPublisher interface {
	Enqueue(event domain.AuditEvent)
}

// AnnouncementService implements the per-club announcement contract. One
// instance serves every namespace; the club is a parameter, so the five
// boards share a single code path while keeping separate collections.
type AnnouncementService struct {
	repo   ports.AnnouncementRepository
	cache  ListCache
	audit  AuditPublisher
	logger zerolog.Logger
}

func NewAnnouncementService(repo ports.AnnouncementRepository, cache ListCache, audit AuditPublisher, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, cache: cache, audit: audit, logger: logger}
}

// List returns the club's announcements in insertion order, serving from the
// cache when it holds a fresh copy.
func (s *AnnouncementService) List(ctx context.Context, club domain.Club) ([]domain.Announcement, error) {
	if items, ok, err := s.cache.Get(ctx, club); err != nil {
		s.logger.Warn().Err(err).Str("club", string(club)).Msg("list cache read failed, falling back to store")
	} else if ok {
		return items, nil
	}

	items, err := s.repo.List(ctx, club)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, club, items); err != nil {
		s.logger.Warn().Err(err).Str("club", string(club)).Msg("list cache write failed")
	}
	return items, nil
}

// Create validates and stores a new announcement. The caller's role must
// manage the club; the authorization check runs before any write.
func (s *AnnouncementService) Create(ctx context.Context, in ports.CreateAnnouncementInput) (*domain.Announcement, error) {
	title := strings.TrimSpace(in.Title)
	message := strings.TrimSpace(in.Message)
	if title == "" || message == "" {
		return nil, domain.ErrMissingField
	}
	if !in.CallerRole.CanManage(in.Club) {
		return nil, domain.ErrForbidden
	}

	created, err := s.repo.Insert(ctx, &domain.Announcement{
		Club:      in.Club,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("club", string(in.Club)).Msg("failed to insert announcement")
		return nil, err
	}

	s.invalidate(ctx, in.Club)
	s.audit.Enqueue(domain.AuditEvent{
		Club:           in.Club,
		Action:         domain.AuditCreated,
		AnnouncementID: created.ID,
		Title:          created.Title,
		Actor:          in.Actor,
		Timestamp:      created.CreatedAt,
	})

	s.logger.Info().Str("club", string(in.Club)).Str("id", created.ID).Msg("announcement created")
	return created, nil
}

// Delete removes an announcement by id. Deleting an id that does not exist
// in the club's namespace is an error, not a no-op.
func (s *AnnouncementService) Delete(ctx context.Context, in ports.DeleteAnnouncementInput) error {
	if !in.CallerRole.CanManage(in.Club) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, in.Club, in.ID); err != nil {
		return err
	}

	s.invalidate(ctx, in.Club)
	s.audit.Enqueue(domain.AuditEvent{
		Club:           in.Club,
		Action:         domain.AuditDeleted,
		AnnouncementID: in.ID,
		Actor:          in.Actor,
		Timestamp:      time.Now().UTC(),
	})

	s.logger.Info().Str("club", string(in.Club)).Str("id", in.ID).Msg("announcement deleted")
	return nil
}

func (s *AnnouncementService) invalidate(ctx context.Context, club domain.Club) {
	if err := s.cache.Invalidate(ctx, club); err != nil {
		s.logger.Warn().Err(err).Str("club", string(club)).Msg("list cache invalidation failed")
	}
}
