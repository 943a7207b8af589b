package models

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpsertRatingCreatesAndRecomputes(t *testing.T) {
	video := &Video{}
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	now := time.Now()

	created := video.UpsertRating(alice, 5, now)
	assert.True(t, created)
	assert.Equal(t, 5.0, video.AverageRating)

	created = video.UpsertRating(bob, 3, now)
	assert.True(t, created)
	assert.Len(t, video.Ratings, 2)
	assert.Equal(t, 4.0, video.AverageRating)
}

func TestUpsertRatingIsIdempotentPerUser(t *testing.T) {
	video := &Video{}
	alice := primitive.NewObjectID()

	video.UpsertRating(alice, 2, time.Now())
	created := video.UpsertRating(alice, 4, time.Now())

	assert.False(t, created)
	assert.Len(t, video.Ratings, 1)
	assert.Equal(t, 4, video.Ratings[0].Value)
	assert.Equal(t, 4.0, video.AverageRating)
}

func TestRemoveRating(t *testing.T) {
	video := &Video{}
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	video.UpsertRating(alice, 5, time.Now())
	video.UpsertRating(bob, 1, time.Now())

	assert.True(t, video.RemoveRating(alice))
	assert.Len(t, video.Ratings, 1)
	assert.Equal(t, 1.0, video.AverageRating)

	// removing the last rating resets the average to exactly 0
	assert.True(t, video.RemoveRating(bob))
	assert.Empty(t, video.Ratings)
	assert.Zero(t, video.AverageRating)

	// a second removal finds nothing
	assert.False(t, video.RemoveRating(bob))
}

func TestRatingBy(t *testing.T) {
	video := &Video{}
	alice := primitive.NewObjectID()

	_, ok := video.RatingBy(alice)
	assert.False(t, ok)

	video.UpsertRating(alice, 3, time.Now())
	value, ok := video.RatingBy(alice)
	assert.True(t, ok)
	assert.Equal(t, 3, value)
}

func TestStatsEmptyVideo(t *testing.T) {
	video := &Video{}
	stats := video.Stats()

	assert.Zero(t, stats.AverageRating)
	assert.Zero(t, stats.TotalRatings)
	for level := MinRating; level <= MaxRating; level++ {
		key := strconv.Itoa(level)
		assert.Zero(t, stats.Distribution[key])
		assert.Equal(t, "0.0", stats.DistributionPercentage[key])
	}
}

func TestStatsDistribution(t *testing.T) {
	video := &Video{}
	now := time.Now()
	for i := 0; i < 3; i++ {
		video.UpsertRating(primitive.NewObjectID(), 5, now)
	}
	video.UpsertRating(primitive.NewObjectID(), 2, now)

	stats := video.Stats()
	assert.Equal(t, 4, stats.TotalRatings)
	assert.Equal(t, 3, stats.Distribution["5"])
	assert.Equal(t, 1, stats.Distribution["2"])
	assert.Equal(t, 0, stats.Distribution["1"])
	assert.Equal(t, "75.0", stats.DistributionPercentage["5"])
	assert.Equal(t, "25.0", stats.DistributionPercentage["2"])
	assert.Equal(t, "0.0", stats.DistributionPercentage["3"])
}

func TestEditCommentAuthorOnly(t *testing.T) {
	video := &Video{}
	author := primitive.NewObjectID()
	other := primitive.NewObjectID()
	createdAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	video.AddComment("c-1", author, "alice", "original", createdAt)

	_, err := video.EditComment("c-1", other, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "original", video.Comments[0].Text)

	edited, err := video.EditComment("c-1", author, "updated")
	require.NoError(t, err)
	assert.Equal(t, "updated", edited.Text)
	// the creation timestamp survives an edit
	assert.Equal(t, createdAt, edited.CreatedAt)

	_, err = video.EditComment("missing", author, "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	video := &Video{}
	author := primitive.NewObjectID()
	other := primitive.NewObjectID()

	video.AddComment("c-1", author, "alice", "first", time.Now())

	err := video.DeleteComment("c-1", other)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Len(t, video.Comments, 1)

	require.NoError(t, video.DeleteComment("c-1", author))
	assert.Empty(t, video.Comments)

	assert.ErrorIs(t, video.DeleteComment("c-1", author), ErrNotFound)
}

func TestCommentsNewestFirstStableOrder(t *testing.T) {
	video := &Video{}
	author := primitive.NewObjectID()
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	video.AddComment("old", author, "alice", "old", base)
	video.AddComment("tie-a", author, "alice", "tie a", base.Add(time.Hour))
	video.AddComment("tie-b", author, "alice", "tie b", base.Add(time.Hour))
	video.AddComment("new", author, "alice", "new", base.Add(2*time.Hour))

	sorted := video.CommentsNewestFirst()
	require.Len(t, sorted, 4)
	assert.Equal(t, "new", sorted[0].ID)
	// identical timestamps keep insertion order
	assert.Equal(t, "tie-a", sorted[1].ID)
	assert.Equal(t, "tie-b", sorted[2].ID)
	assert.Equal(t, "old", sorted[3].ID)

	// sorting does not mutate the stored order
	assert.Equal(t, "old", video.Comments[0].ID)
}
