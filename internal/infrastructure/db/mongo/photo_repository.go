package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roastify/roast-api/internal/core/domain"
)

const photosCollection = "photos"

type MongoPhotoRepository struct {
	coll *mongo.Collection
}

func NewPhotoRepository(db *mongo.Database) *MongoPhotoRepository {
	return &MongoPhotoRepository{coll: db.Collection(photosCollection)}
}

type mongoPhotoDoc struct {
	UserID    string                  `bson:"userId"`
	Name      string                  `bson:"name"`
	PhotoSeq  int                     `bson:"photoSeq"`
	Photos    map[string]domain.Photo `bson:"photos"`
	CreatedAt time.Time               `bson:"createdAt"`
	UpdatedAt time.Time               `bson:"updatedAt"`
}

// Add reserves the next slot number through an atomic $inc on the document's
// photoSeq counter, then writes the photo under that slot. Two concurrent
// uploads therefore always receive distinct keys, unlike a read-count-then-
// write scheme.
func (r *MongoPhotoRepository) Add(ctx context.Context, userID, name string, photo domain.Photo) (string, int, error) {
	now := time.Now().UTC()
	filter := bson.M{"userId": userID, "name": name}

	var doc mongoPhotoDoc
	err := r.coll.FindOneAndUpdate(ctx, filter,
		bson.M{
			"$inc":         bson.M{"photoSeq": 1},
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"userId": userID, "name": name, "createdAt": now},
		},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return "", 0, fmt.Errorf("reserve photo slot: %w", err)
	}

	slotKey := fmt.Sprintf("photo%d", doc.PhotoSeq)
	_, err = r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"photos." + slotKey: photo}})
	if err != nil {
		return "", 0, fmt.Errorf("store photo: %w", err)
	}

	return slotKey, len(doc.Photos) + 1, nil
}

func (r *MongoPhotoRepository) Get(ctx context.Context, userID, name string) (*domain.PhotoDocument, error) {
	var doc mongoPhotoDoc
	err := r.coll.FindOne(ctx, bson.M{"userId": userID, "name": name}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPhotosNotFound
		}
		return nil, fmt.Errorf("find photos: %w", err)
	}

	photos := doc.Photos
	if photos == nil {
		photos = map[string]domain.Photo{}
	}
	return &domain.PhotoDocument{
		UserID:      doc.UserID,
		Name:        doc.Name,
		Photos:      photos,
		TotalPhotos: len(photos),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func (r *MongoPhotoRepository) DeleteSlot(ctx context.Context, userID, name, slotKey string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"userId": userID, "name": name},
		bson.M{
			"$unset": bson.M{"photos." + slotKey: 1},
			"$set":   bson.M{"updatedAt": time.Now().UTC()},
		})
	if err != nil {
		return fmt.Errorf("delete photo slot: %w", err)
	}
	return nil
}
