package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

const usersCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	Password      string             `bson:"password"`
	JoinDate      time.Time          `bson:"joinDate"`
	TotalRoasts   int                `bson:"totalRoasts"`
	FavoriteStyle string             `bson:"favoriteStyle"`
	Level         string             `bson:"level"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:            mu.ID.Hex(),
		Name:          mu.Name,
		Email:         mu.Email,
		PasswordHash:  mu.Password,
		JoinDate:      mu.JoinDate,
		TotalRoasts:   mu.TotalRoasts,
		FavoriteStyle: mu.FavoriteStyle,
		Level:         mu.Level,
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	// Pre-check keeps the common duplicate path cheap; the unique index on
	// email is the actual guarantee under concurrency.
	if err := r.coll.FindOne(ctx, bson.M{"email": user.Email}).Err(); err == nil {
		return nil, domain.ErrUserExists
	} else if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	doc := mongoUser{
		Name:          user.Name,
		Email:         user.Email,
		Password:      user.PasswordHash,
		JoinDate:      user.JoinDate,
		TotalRoasts:   user.TotalRoasts,
		FavoriteStyle: user.FavoriteStyle,
		Level:         user.Level,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	set := bson.M{}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Email != "" {
		set["email"] = update.Email
	}
	if update.FavoriteStyle != "" {
		set["favoriteStyle"] = update.FavoriteStyle
	}
	if update.Level != "" {
		set["level"] = update.Level
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	// Uniqueness excluding self: another account holding the new email wins.
	if update.Email != "" {
		err := r.coll.FindOne(ctx, bson.M{"email": update.Email, "_id": bson.M{"$ne": oid}}).Err()
		if err == nil {
			return nil, domain.ErrUserExists
		}
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("check email uniqueness: %w", err)
		}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return res.DeletedCount == 1, nil
}

func (r *MongoUserRepository) SetPasswordHash(ctx context.Context, id, hash string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return false, fmt.Errorf("update password: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

func (r *MongoUserRepository) IncrementTotalRoasts(ctx context.Context, id string, delta int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"totalRoasts": delta}})
	if err != nil {
		return fmt.Errorf("increment total roasts: %w", err)
	}
	return nil
}
