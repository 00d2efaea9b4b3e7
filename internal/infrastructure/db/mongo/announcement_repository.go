package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// AnnouncementRepository keeps one collection per club namespace
// (iet_announcements, ieee_announcements, …). A problem in one club's
// collection cannot touch another's, and an id is only resolvable within the
// club it was created in.
type AnnouncementRepository struct {
	colls map[domain.Club]*mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	colls := make(map[domain.Club]*mongo.Collection, len(domain.Clubs()))
	for _, club := range domain.Clubs() {
		colls[club] = db.Collection(fmt.Sprintf("%s_announcements", club))
	}
	return &AnnouncementRepository{colls: colls}
}

type mongoAnnouncement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	CreatedAt int64              `bson:"created_at"`
}

// List returns all announcements for the club in insertion order. ObjectIDs
// embed their creation timestamp, so sorting by _id preserves it.
func (r *AnnouncementRepository) List(ctx context.Context, club domain.Club) ([]domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(club)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAnnouncement
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}

	items := make([]domain.Announcement, len(docs))
	for i, doc := range docs {
		items[i] = domain.Announcement{
			ID:        doc.ID.Hex(),
			Club:      club,
			Title:     doc.Title,
			Message:   doc.Message,
			CreatedAt: unixToTime(doc.CreatedAt),
		}
	}
	return items, nil
}

// Insert stores a new announcement and returns it with the assigned id.
func (r *AnnouncementRepository) Insert(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(a.Club)
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, mongoAnnouncement{
		Title:     a.Title,
		Message:   a.Message,
		CreatedAt: a.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}

	created := *a
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Delete removes an announcement by id within the club's namespace. A
// malformed or absent id yields domain.ErrAnnouncementNotFound.
func (r *AnnouncementRepository) Delete(ctx context.Context, club domain.Club, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll, err := r.collection(club)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAnnouncementNotFound
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAnnouncementNotFound
	}
	return nil
}

func (r *AnnouncementRepository) collection(club domain.Club) (*mongo.Collection, error) {
	coll, ok := r.colls[club]
	if !ok {
		return nil, domain.ErrUnknownClub
	}
	return coll, nil
}
