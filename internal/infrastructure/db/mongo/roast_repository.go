package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roastify/roast-api/internal/core/domain"
)

const roastsCollection = "roasts"

type MongoRoastRepository struct {
	coll *mongo.Collection
}

func NewRoastRepository(db *mongo.Database) *MongoRoastRepository {
	return &MongoRoastRepository{coll: db.Collection(roastsCollection)}
}

type mongoRoast struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Content   string             `bson:"content"`
	Style     string             `bson:"style"`
	Language  string             `bson:"language"`
	ImageURL  string             `bson:"imageUrl,omitempty"`
	UserInput string             `bson:"userInput,omitempty"`
	Rating    int                `bson:"rating"`
	CreatedAt time.Time          `bson:"createdAt"`
	Reactions domain.Reactions   `bson:"reactions"`
}

func (mr *mongoRoast) toDomain() domain.Roast {
	return domain.Roast{
		ID:        mr.ID.Hex(),
		UserID:    mr.UserID,
		Content:   mr.Content,
		Style:     mr.Style,
		Language:  mr.Language,
		ImageURL:  mr.ImageURL,
		UserInput: mr.UserInput,
		Rating:    mr.Rating,
		CreatedAt: mr.CreatedAt,
		Reactions: mr.Reactions,
	}
}

func (r *MongoRoastRepository) Insert(ctx context.Context, roast *domain.Roast) (*domain.Roast, error) {
	doc := mongoRoast{
		UserID:    roast.UserID,
		Content:   roast.Content,
		Style:     roast.Style,
		Language:  roast.Language,
		ImageURL:  roast.ImageURL,
		UserInput: roast.UserInput,
		Rating:    roast.Rating,
		CreatedAt: roast.CreatedAt,
		Reactions: roast.Reactions,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert roast: %w", err)
	}

	created := *roast
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoRoastRepository) FindByID(ctx context.Context, id string) (*domain.Roast, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoastNotFound
	}

	var mr mongoRoast
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoastNotFound
		}
		return nil, fmt.Errorf("find roast: %w", err)
	}

	roast := mr.toDomain()
	return &roast, nil
}

func (r *MongoRoastRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Roast, error) {
	return r.list(ctx, bson.M{"userId": userID}, limit)
}

func (r *MongoRoastRepository) ListAll(ctx context.Context, limit int) ([]domain.Roast, error) {
	return r.list(ctx, bson.M{}, limit)
}

func (r *MongoRoastRepository) list(ctx context.Context, filter bson.M, limit int) ([]domain.Roast, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list roasts: %w", err)
	}
	defer cursor.Close(ctx)

	roasts := []domain.Roast{}
	for cursor.Next(ctx) {
		var mr mongoRoast
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode roast: %w", err)
		}
		roasts = append(roasts, mr.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate roasts: %w", err)
	}
	return roasts, nil
}

func (r *MongoRoastRepository) IncrementReaction(ctx context.Context, id string, reaction domain.ReactionType) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrRoastNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"reactions." + string(reaction): 1}})
	if err != nil {
		return false, fmt.Errorf("increment reaction: %w", err)
	}
	return res.MatchedCount == 1, nil
}

func (r *MongoRoastRepository) UpdateRating(ctx context.Context, id string, rating int) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrRoastNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"rating": rating}})
	if err != nil {
		return false, fmt.Errorf("update rating: %w", err)
	}
	return res.MatchedCount == 1, nil
}

func (r *MongoRoastRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	// Ownership is part of the filter so it cannot change between a check
	// and the delete.
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return false, fmt.Errorf("delete roast: %w", err)
	}
	return res.DeletedCount == 1, nil
}
