package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidhub-backend/helper"
	"vidhub-backend/models"
)

// EngagementService owns every mutation of a video's likes, ratings and
// comments. Ratings and comments are mutated load-then-save against the
// video document; two concurrent writers targeting the same video can
// briefly observe each other's stale aggregate between the read and the
// write, which is an accepted property of the design. The like relation is
// different: membership lives on the user document and is flipped with a
// single atomic update, and the count on the video is derived from
// membership rather than incremented, so the counter itself has no
// dual-write race.
type EngagementService struct {
	userStore        UserStore
	videoStore       VideoStore
	maxCommentLength int
}

func NewEngagementService(userStore UserStore, videoStore VideoStore, maxCommentLength int) *EngagementService {
	return &EngagementService{
		userStore:        userStore,
		videoStore:       videoStore,
		maxCommentLength: maxCommentLength,
	}
}

// ToggleLike flips the caller's membership in the video's liked-by relation
// and returns the new state with the membership-derived count.
func (s *EngagementService) ToggleLike(ctx context.Context, userID, videoID primitive.ObjectID) (*models.LikeResponse, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.videoStore.FindByID(ctx, videoID); err != nil {
		return nil, err
	}

	liked := !user.Likes(videoID)
	if err := s.userStore.SetVideoLiked(ctx, userID, videoID, liked); err != nil {
		return nil, err
	}

	count, err := s.userStore.CountLikes(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := s.videoStore.SetLikesCount(ctx, videoID, count); err != nil {
		return nil, err
	}

	return &models.LikeResponse{Liked: liked, LikesCount: count}, nil
}

// UpsertRating records or replaces the caller's 1-5 rating. Validation
// happens before any storage access.
func (s *EngagementService) UpsertRating(ctx context.Context, userID, videoID primitive.ObjectID, rating *int) (*models.RatingResponse, error) {
	if rating == nil || *rating < models.MinRating || *rating > models.MaxRating {
		return nil, models.E(models.ErrInvalidArgument,
			fmt.Sprintf("rating must be an integer between %d and %d", models.MinRating, models.MaxRating))
	}

	video, err := s.videoStore.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	created := video.UpsertRating(userID, *rating, time.Now())
	if err := s.videoStore.SaveRatings(ctx, video); err != nil {
		return nil, err
	}

	return &models.RatingResponse{
		AverageRating: video.AverageRating,
		TotalRatings:  len(video.Ratings),
		UserRating:    rating,
		Created:       created,
	}, nil
}

// GetOwnRating returns the caller's rating alongside the aggregates.
// UserRating is nil when the caller has not rated the video.
func (s *EngagementService) GetOwnRating(ctx context.Context, userID, videoID primitive.ObjectID) (*models.RatingResponse, error) {
	video, err := s.videoStore.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	resp := &models.RatingResponse{
		AverageRating: video.AverageRating,
		TotalRatings:  len(video.Ratings),
	}
	if value, ok := video.RatingBy(userID); ok {
		resp.UserRating = &value
	}
	return resp, nil
}

// RemoveRating deletes the caller's rating and recomputes the average over
// the remaining set.
func (s *EngagementService) RemoveRating(ctx context.Context, userID, videoID primitive.ObjectID) (*models.RatingResponse, error) {
	video, err := s.videoStore.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if !video.RemoveRating(userID) {
		return nil, models.E(models.ErrNotFound, "you have not rated this video")
	}
	if err := s.videoStore.SaveRatings(ctx, video); err != nil {
		return nil, err
	}

	return &models.RatingResponse{
		AverageRating: video.AverageRating,
		TotalRatings:  len(video.Ratings),
	}, nil
}

func (s *EngagementService) RatingStatistics(ctx context.Context, videoID primitive.ObjectID) (*models.RatingStats, error) {
	video, err := s.videoStore.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	stats := video.Stats()
	return &stats, nil
}

// AddComment appends a comment with a snapshot of the caller's display name.
func (s *EngagementService) AddComment(ctx context.Context, userID, videoID primitive.ObjectID, text string) (*models.CommentResponse, error) {
	text, err := s.validateCommentText(text)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	video, err := s.videoStore.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	comment := video.AddComment(uuid.NewString(), userID, user.Name, text, time.Now())
	if err := s.videoStore.SaveComments(ctx, video); err != nil {
		return nil, err
	}

	return &models.CommentResponse{
		Comment:       &comment,
		TotalComments: len(video.Comments),
	}, nil
}

// EditComment replaces the text of the caller's own comment. The creation
// timestamp is preserved.
func (s *EngagementService) EditComment(ctx context.Context, userID, videoID primitive.ObjectID, commentID, text string) (*models.CommentResponse, error) {
	text, err := s.validateCommentText(text)
	if err != nil {
		return nil, err
	}

	video, err := s.videoStore.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	comment, err := video.EditComment(commentID, userID, text)
	if err != nil {
		return nil, err
	}
	if err := s.videoStore.SaveComments(ctx, video); err != nil {
		return nil, err
	}

	return &models.CommentResponse{
		Comment:       &comment,
		TotalComments: len(video.Comments),
	}, nil
}

func (s *EngagementService) DeleteComment(ctx context.Context, userID, videoID primitive.ObjectID, commentID string) (*models.CommentResponse, error) {
	video, err := s.videoStore.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := video.DeleteComment(commentID, userID); err != nil {
		return nil, err
	}
	if err := s.videoStore.SaveComments(ctx, video); err != nil {
		return nil, err
	}

	return &models.CommentResponse{TotalComments: len(video.Comments)}, nil
}

// ListComments returns one page of a video's comments, newest first.
func (s *EngagementService) ListComments(ctx context.Context, videoID primitive.ObjectID, page, limit int) (*models.CommentListResponse, error) {
	video, err := s.videoStore.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	sorted := video.CommentsNewestFirst()
	bounds := helper.Paginate(page, limit, len(sorted))
	start, end := bounds.Slice(len(sorted))

	return &models.CommentListResponse{
		Comments:      sorted[start:end],
		CurrentPage:   bounds.Number,
		TotalPages:    bounds.TotalPages,
		TotalComments: len(sorted),
	}, nil
}

func (s *EngagementService) validateCommentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", models.E(models.ErrInvalidArgument, "comment text must not be empty")
	}
	if len(text) > s.maxCommentLength {
		return "", models.E(models.ErrInvalidArgument,
			fmt.Sprintf("comment text exceeds %d characters", s.maxCommentLength))
	}
	return text, nil
}
