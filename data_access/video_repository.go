package data_access

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidhub-backend/models"
)

type VideoRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewVideoRepository(db *MongoDB) *VideoRepository {
	return &VideoRepository{
		db:         db,
		collection: db.Collection("videos"),
	}
}

func (r *VideoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	var video models.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// List returns one page of the catalog ordered by insertion, newest first,
// along with the total document count.
func (r *VideoRepository) List(ctx context.Context, offset, limit int) ([]models.Video, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var videos []models.Video
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// UpsertFromCatalog inserts a newly-seen catalog entry keyed on its external
// id. Existing documents are left untouched, engagement state included, so
// re-ingestion is safe at any time.
func (r *VideoRepository) UpsertFromCatalog(ctx context.Context, video *models.Video) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"pexels_id": video.PexelsID},
		bson.M{"$setOnInsert": video},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return result.UpsertedCount > 0, nil
}

// SaveRatings persists a video's rating set together with the derived
// average. The two fields always travel in the same update so the average
// never drifts from the set it summarizes.
func (r *VideoRepository) SaveRatings(ctx context.Context, video *models.Video) error {
	update := bson.M{"$set": bson.M{
		"ratings":        video.Ratings,
		"average_rating": video.AverageRating,
	}}
	return r.updateByID(ctx, video.ID, update)
}

func (r *VideoRepository) SaveComments(ctx context.Context, video *models.Video) error {
	update := bson.M{"$set": bson.M{"comments": video.Comments}}
	return r.updateByID(ctx, video.ID, update)
}

// SetLikesCount caches the membership-derived like count on the video for
// read paths.
func (r *VideoRepository) SetLikesCount(ctx context.Context, id primitive.ObjectID, count int) error {
	if count < 0 {
		count = 0
	}
	update := bson.M{"$set": bson.M{"likes_count": count}}
	return r.updateByID(ctx, id, update)
}

func (r *VideoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) updateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
