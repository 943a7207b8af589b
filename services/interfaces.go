package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidhub-backend/models"
)

// UserStore is the persistence surface the services need for user
// documents. data_access.UserRepository implements it; tests substitute
// in-memory fakes.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name string, age int) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiry time.Time) error
	FindByResetToken(ctx context.Context, token string) (*models.User, error)
	ResetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetVideoLiked(ctx context.Context, userID, videoID primitive.ObjectID, liked bool) error
	CountLikes(ctx context.Context, videoID primitive.ObjectID) (int, error)
	AddFavorite(ctx context.Context, userID primitive.ObjectID, videoRef string) error
	RemoveFavorite(ctx context.Context, userID primitive.ObjectID, videoRef string) error
}

// VideoStore is the persistence surface for video documents.
type VideoStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	List(ctx context.Context, offset, limit int) ([]models.Video, int64, error)
	UpsertFromCatalog(ctx context.Context, video *models.Video) (bool, error)
	SaveRatings(ctx context.Context, video *models.Video) error
	SaveComments(ctx context.Context, video *models.Video) error
	SetLikesCount(ctx context.Context, id primitive.ObjectID, count int) error
}

// CatalogClient fetches video metadata from the external provider.
type CatalogClient interface {
	FetchPopular(ctx context.Context, page, perPage int) ([]models.PexelsVideo, error)
	SearchVideos(ctx context.Context, query string, page, perPage int) ([]models.PexelsVideo, error)
}

// Mailer delivers outbound mail. Delivery itself is an external concern;
// the auth service only hands it a reset token.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}
