package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	// Account information
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Age       int                `bson:"age" json:"age"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	LastLogin time.Time          `bson:"last_login" json:"last_login"`

	// Videos this user currently likes (source of truth for the like relation)
	LikedVideos []primitive.ObjectID `bson:"liked_videos" json:"liked_videos"`

	// Legacy favorites mechanism: opaque video references, kept separate
	// from the like relation
	FavoriteVideos []string `bson:"favorite_videos" json:"favorite_videos"`

	// Single-use password reset token
	ResetToken       string    `bson:"reset_token,omitempty" json:"-"`
	ResetTokenExpiry time.Time `bson:"reset_token_expiry,omitempty" json:"-"`
}

// IsAdmin reports whether the user carries the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Likes reports whether the user's liked set contains the given video.
func (u *User) Likes(videoID primitive.ObjectID) bool {
	for _, id := range u.LikedVideos {
		if id == videoID {
			return true
		}
	}
	return false
}
