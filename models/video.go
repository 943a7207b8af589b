package models

import (
	"sort"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinRating = 1
	MaxRating = 5
)

// VideoFile is one downloadable variant of a video, as delivered by the
// external catalog provider.
type VideoFile struct {
	Quality  string `bson:"quality" json:"quality"`
	Width    int    `bson:"width" json:"width"`
	Height   int    `bson:"height" json:"height"`
	FileType string `bson:"file_type" json:"file_type"`
	Link     string `bson:"link" json:"link"`
}

// VideoPicture is a preview frame of a video.
type VideoPicture struct {
	PictureID int    `bson:"picture_id" json:"picture_id"`
	Picture   string `bson:"picture" json:"picture"`
}

// Rating is a single user's 1-5 star rating of a video. A video holds at
// most one Rating per user.
type Rating struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Value     int                `bson:"value" json:"value"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Comment is a user comment on a video. UserName is a snapshot of the
// author's display name at creation time, not a live reference.
type Comment struct {
	ID        string             `bson:"comment_id" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type Video struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PexelsID int                `bson:"pexels_id" json:"pexels_id"`
	Width    int                `bson:"width" json:"width"`
	Height   int                `bson:"height" json:"height"`
	Duration int                `bson:"duration" json:"duration"`
	URL      string             `bson:"url" json:"url"`
	Image    string             `bson:"image" json:"image"`

	VideoFiles    []VideoFile    `bson:"video_files" json:"video_files"`
	VideoPictures []VideoPicture `bson:"video_pictures" json:"video_pictures"`

	// Engagement state, owned exclusively by this document. AverageRating is
	// derived from Ratings and recomputed on every mutation of the set.
	LikesCount    int       `bson:"likes_count" json:"likes_count"`
	AverageRating float64   `bson:"average_rating" json:"average_rating"`
	Ratings       []Rating  `bson:"ratings" json:"ratings"`
	Comments      []Comment `bson:"comments" json:"comments"`
}

// RatingStats summarizes the rating set: per-level counts and each level's
// share of the total as a percentage string with one decimal place.
type RatingStats struct {
	AverageRating          float64           `json:"averageRating"`
	TotalRatings           int               `json:"totalRatings"`
	Distribution           map[string]int    `json:"distribution"`
	DistributionPercentage map[string]string `json:"distributionPercentage"`
}

// recomputeAverage re-derives AverageRating from the current rating set.
// An empty set yields exactly 0.
func (v *Video) recomputeAverage() {
	if len(v.Ratings) == 0 {
		v.AverageRating = 0
		return
	}
	sum := 0
	for _, r := range v.Ratings {
		sum += r.Value
	}
	v.AverageRating = float64(sum) / float64(len(v.Ratings))
}

// UpsertRating records or replaces the user's rating and recomputes the
// average. It returns true when a new entry was created, false when an
// existing one was overwritten. Last write wins per user.
func (v *Video) UpsertRating(userID primitive.ObjectID, value int, now time.Time) bool {
	defer v.recomputeAverage()
	for i := range v.Ratings {
		if v.Ratings[i].UserID == userID {
			v.Ratings[i].Value = value
			v.Ratings[i].CreatedAt = now
			return false
		}
	}
	v.Ratings = append(v.Ratings, Rating{UserID: userID, Value: value, CreatedAt: now})
	return true
}

// RemoveRating deletes the user's rating if present and recomputes the
// average. It reports whether a rating was removed.
func (v *Video) RemoveRating(userID primitive.ObjectID) bool {
	for i := range v.Ratings {
		if v.Ratings[i].UserID == userID {
			v.Ratings = append(v.Ratings[:i], v.Ratings[i+1:]...)
			v.recomputeAverage()
			return true
		}
	}
	return false
}

// RatingBy returns the user's current rating value, or ok=false when the
// user has not rated this video.
func (v *Video) RatingBy(userID primitive.ObjectID) (int, bool) {
	for _, r := range v.Ratings {
		if r.UserID == userID {
			return r.Value, true
		}
	}
	return 0, false
}

// Stats builds the level-by-level distribution of the rating set. Shares are
// "0.0" across all levels when the set is empty.
func (v *Video) Stats() RatingStats {
	stats := RatingStats{
		AverageRating:          v.AverageRating,
		TotalRatings:           len(v.Ratings),
		Distribution:           make(map[string]int, MaxRating),
		DistributionPercentage: make(map[string]string, MaxRating),
	}
	for _, r := range v.Ratings {
		stats.Distribution[strconv.Itoa(r.Value)]++
	}
	for level := MinRating; level <= MaxRating; level++ {
		key := strconv.Itoa(level)
		count := stats.Distribution[key]
		stats.Distribution[key] = count
		if stats.TotalRatings == 0 {
			stats.DistributionPercentage[key] = "0.0"
			continue
		}
		share := float64(count) / float64(stats.TotalRatings) * 100
		stats.DistributionPercentage[key] = strconv.FormatFloat(share, 'f', 1, 64)
	}
	return stats
}

// AddComment appends a comment authored by the given user. Text is assumed
// to be validated by the caller.
func (v *Video) AddComment(id string, userID primitive.ObjectID, userName, text string, now time.Time) Comment {
	comment := Comment{
		ID:        id,
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		CreatedAt: now,
	}
	v.Comments = append(v.Comments, comment)
	return comment
}

// EditComment replaces the text of the identified comment in place. The
// creation timestamp is preserved. Only the original author may edit.
func (v *Video) EditComment(commentID string, userID primitive.ObjectID, text string) (Comment, error) {
	for i := range v.Comments {
		if v.Comments[i].ID == commentID {
			if v.Comments[i].UserID != userID {
				return Comment{}, ErrForbidden
			}
			v.Comments[i].Text = text
			return v.Comments[i], nil
		}
	}
	return Comment{}, ErrNotFound
}

// DeleteComment removes the identified comment. Only the original author
// may delete.
func (v *Video) DeleteComment(commentID string, userID primitive.ObjectID) error {
	for i := range v.Comments {
		if v.Comments[i].ID == commentID {
			if v.Comments[i].UserID != userID {
				return ErrForbidden
			}
			v.Comments = append(v.Comments[:i], v.Comments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// CommentsNewestFirst returns a copy of the comments sorted by creation time
// descending. The sort is stable, so comments sharing a timestamp keep their
// insertion order and repeated listings paginate deterministically.
func (v *Video) CommentsNewestFirst() []Comment {
	sorted := make([]Comment, len(v.Comments))
	copy(sorted, v.Comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
