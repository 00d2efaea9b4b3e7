package portal

import (
	"context"
	"errors"
	"sync"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// ErrBusy is returned when a submit starts while another is still in flight.
// The guard serializes submits so the final list always reflects the latest
// reconciling fetch rather than whichever fetch happened to resolve last.
var ErrBusy = errors.New("submit already in flight")

// BoardState is the view model's position in the submit protocol.
type BoardState int

const (
	StateIdle BoardState = iota
	StateSubmitting
	StateReconciling
	StateFailed
)

func (s BoardState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateReconciling:
		return "reconciling"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Board is the view model for one club's announcement list. Mutations apply
// optimistically to the local copy, then a full re-fetch replaces it with
// the server's canonical ordering and defaults. On failure the local copy is
// left at its last-known-good value and the error is retained; there is no
// automatic retry.
type Board struct {
	client *Client
	club   domain.Club

	mu      sync.Mutex
	state   BoardState
	items   []domain.Announcement
	lastErr error
}

// NewBoard creates a Board for the given club. Call Refresh to populate it.
func NewBoard(client *Client, club domain.Club) *Board {
	return &Board{client: client, club: club}
}

// State returns the current state machine position.
func (b *Board) State() BoardState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Err returns the error recorded by the last failed operation, if any.
func (b *Board) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// Items returns a copy of the local announcement list.
func (b *Board) Items() []domain.Announcement {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Announcement, len(b.items))
	copy(out, b.items)
	return out
}

// Refresh replaces the local list with the server's canonical state. It
// shares the in-flight guard with Submit and Remove so a refresh cannot
// reset the state machine under a running mutation.
func (b *Board) Refresh(ctx context.Context) error {
	b.mu.Lock()
	if b.state == StateSubmitting || b.state == StateReconciling {
		b.mu.Unlock()
		return ErrBusy
	}
	b.state = StateReconciling
	b.lastErr = nil
	b.mu.Unlock()

	return b.reconcile(ctx)
}

// Submit posts a new announcement: optimistic local append, then a
// reconciling re-fetch. Only one submit may be in flight per board.
func (b *Board) Submit(ctx context.Context, title, message string) error {
	if err := b.begin(); err != nil {
		return err
	}

	created, err := b.client.CreateAnnouncement(ctx, b.club, title, message)
	if err != nil {
		// Local state untouched: last-known-good is the pre-optimistic list.
		b.fail(err)
		return err
	}

	b.mu.Lock()
	b.items = append(b.items, *created)
	b.state = StateReconciling
	b.mu.Unlock()

	return b.reconcile(ctx)
}

// Remove deletes an announcement by id: optimistic local removal, then a
// reconciling re-fetch.
func (b *Board) Remove(ctx context.Context, id string) error {
	if err := b.begin(); err != nil {
		return err
	}

	if err := b.client.DeleteAnnouncement(ctx, b.club, id); err != nil {
		b.fail(err)
		return err
	}

	b.mu.Lock()
	kept := b.items[:0]
	for _, item := range b.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	b.items = kept
	b.state = StateReconciling
	b.mu.Unlock()

	return b.reconcile(ctx)
}

// begin claims the in-flight slot. A board in Failed state may start a new
// submit; Submitting and Reconciling may not.
func (b *Board) begin() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateSubmitting || b.state == StateReconciling {
		return ErrBusy
	}
	b.state = StateSubmitting
	b.lastErr = nil
	return nil
}

// reconcile replaces the optimistic list with the server's canonical one.
// On fetch failure the optimistic list stands as last-known-good.
func (b *Board) reconcile(ctx context.Context) error {
	items, err := b.client.Announcements(ctx, b.club)
	if err != nil {
		b.fail(err)
		return err
	}

	b.mu.Lock()
	b.items = items
	b.state = StateIdle
	b.mu.Unlock()
	return nil
}

func (b *Board) fail(err error) {
	b.mu.Lock()
	b.state = StateFailed
	b.lastErr = err
	b.mu.Unlock()
}
