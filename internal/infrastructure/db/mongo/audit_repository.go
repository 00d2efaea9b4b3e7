package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techconnect/club-portal/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository persists the announcement activity trail. All clubs share
// one collection here; unlike announcements, audit rows are queried by club
// filter and never mutated, so isolation buys nothing.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Club           string `bson:"club"`
	Action         string `bson:"action"`
	AnnouncementID string `bson:"announcement_id"`
	Title          string `bson:"title,omitempty"`
	Actor          string `bson:"actor,omitempty"`
	Timestamp      int64  `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, mongoAuditEvent{
		Club:           string(event.Club),
		Action:         string(event.Action),
		AnnouncementID: event.AnnouncementID,
		Title:          event.Title,
		Actor:          event.Actor,
		Timestamp:      event.Timestamp.Unix(),
	})
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByClub returns the most recent events for a club, newest first.
func (r *AuditRepository) ListByClub(ctx context.Context, club domain.Club, limit int) ([]domain.AuditEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"club": string(club)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAuditEvent
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit events: %w", err)
	}

	events := make([]domain.AuditEvent, len(docs))
	for i, doc := range docs {
		events[i] = domain.AuditEvent{
			Club:           domain.Club(doc.Club),
			Action:         domain.AuditAction(doc.Action),
			AnnouncementID: doc.AnnouncementID,
			Title:          doc.Title,
			Actor:          doc.Actor,
			Timestamp:      unixToTime(doc.Timestamp),
		}
	}
	return events, nil
}

// EnsureIndexes creates the club lookup index for the activity endpoint.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "club", Value: 1}, {Key: "_id", Value: -1}},
	})
	return err
}
