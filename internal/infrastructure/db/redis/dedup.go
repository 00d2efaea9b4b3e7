package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techconnect/club-portal/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker suppresses duplicate audit events, backed by Redis.
// Key format: audit:<club>:<action>:<announcement_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact event has already been recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, club domain.Club, action domain.AuditAction, id string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(club, action, id)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, club domain.Club, action domain.AuditAction, id string) error {
	return d.client.Set(ctx, d.key(club, action, id), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(club domain.Club, action domain.AuditAction, id string) string {
	return fmt.Sprintf("audit:%s:%s:%s", club, action, id)
}
