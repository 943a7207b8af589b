package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidhub-backend/models"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, name string, age int) error {
	update := bson.M{"$set": bson.M{"name": name, "age": age}}
	return r.updateByID(ctx, id, update)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{"$set": bson.M{"password": passwordHash}}
	return r.updateByID(ctx, id, update)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	update := bson.M{"$set": bson.M{"last_login": at}}
	return r.updateByID(ctx, id, update)
}

func (r *UserRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiry time.Time) error {
	update := bson.M{"$set": bson.M{"reset_token": token, "reset_token_expiry": expiry}}
	return r.updateByID(ctx, id, update)
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"reset_token": token}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetPassword stores the new hash and consumes the reset token in one
// document update.
func (r *UserRepository) ResetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{
		"$set":   bson.M{"password": passwordHash},
		"$unset": bson.M{"reset_token": "", "reset_token_expiry": ""},
	}
	return r.updateByID(ctx, id, update)
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SetVideoLiked flips the membership of a video in the user's liked set with
// a single atomic document update.
func (r *UserRepository) SetVideoLiked(ctx context.Context, userID, videoID primitive.ObjectID, liked bool) error {
	update := bson.M{"$pull": bson.M{"liked_videos": videoID}}
	if liked {
		update = bson.M{"$addToSet": bson.M{"liked_videos": videoID}}
	}
	return r.updateByID(ctx, userID, update)
}

// CountLikes derives a video's like count from the membership lists, the
// source of truth for the like relation.
func (r *UserRepository) CountLikes(ctx context.Context, videoID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"liked_videos": videoID})
	return int(count), err
}

func (r *UserRepository) AddFavorite(ctx context.Context, userID primitive.ObjectID, videoRef string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"favorite_videos": videoRef}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	if result.ModifiedCount == 0 {
		return models.ErrInvalidArgument
	}
	return nil
}

func (r *UserRepository) RemoveFavorite(ctx context.Context, userID primitive.ObjectID, videoRef string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"favorite_videos": videoRef}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 || result.ModifiedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *UserRepository) updateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
