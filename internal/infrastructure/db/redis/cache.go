package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techconnect/club-portal/internal/core/domain"
)

const defaultCacheTTL = 30 * time.Second

// AnnouncementCache is a read-through cache of per-club announcement lists.
// Key format: announcements:<club>
// Mutations invalidate the club's key; the short TTL bounds staleness when an
// invalidation is lost.
type AnnouncementCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnnouncementCache creates an AnnouncementCache wrapping the given client.
func NewAnnouncementCache(client *redis.Client, ttl time.Duration) *AnnouncementCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &AnnouncementCache{client: client, ttl: ttl}
}

// Get returns the cached list and whether the key was present.
func (c *AnnouncementCache) Get(ctx context.Context, club domain.Club) ([]domain.Announcement, bool, error) {
	raw, err := c.client.Get(ctx, c.key(club)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var items []domain.Announcement
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return items, true, nil
}

// Set stores the club's list for the cache TTL.
func (c *AnnouncementCache) Set(ctx context.Context, club domain.Club, items []domain.Announcement) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(club), raw, c.ttl).Err()
}

// Invalidate drops the club's cached list.
func (c *AnnouncementCache) Invalidate(ctx context.Context, club domain.Club) error {
	return c.client.Del(ctx, c.key(club)).Err()
}

func (c *AnnouncementCache) key(club domain.Club) string {
	return fmt.Sprintf("announcements:%s", club)
}
