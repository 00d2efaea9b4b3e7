package domain

import "time"

// Announcement is a single board entry within one club namespace. The club
// is derived from the route, never set by the client.
type Announcement struct {
	ID        string    `json:"id"`
	Club      Club      `json:"club"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditAction labels a mutation recorded in the activity trail.
type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditDeleted AuditAction = "deleted"
)

// AuditEvent records one announcement mutation for the per-club activity trail.
type AuditEvent struct {
	Club           Club        `json:"club"`
	Action         AuditAction `json:"action"`
	AnnouncementID string      `json:"announcement_id"`
	Title          string      `json:"title,omitempty"`
	Actor          string      `json:"actor,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
}
