package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidhub-backend/models"
)

// In-memory stores backing the service tests. They hand out copies the way
// a database decode would, so nothing persists unless the service calls a
// save method.

type fakeUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (s *fakeUserStore) add(user *models.User) *models.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = user
	return user
}

func copyUser(user *models.User) *models.User {
	clone := *user
	clone.LikedVideos = append([]primitive.ObjectID(nil), user.LikedVideos...)
	clone.FavoriteVideos = append([]string(nil), user.FavoriteVideos...)
	return &clone
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	stored := s.add(copyUser(user))
	user.ID = stored.ID
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return copyUser(user), nil
}

func (s *fakeUserStore) UpdateProfile(_ context.Context, id primitive.ObjectID, name string, age int) error {
	user, ok := s.users[id]
	if !ok {
		return models.ErrNotFound
	}
	user.Name = name
	user.Age = age
	return nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	user, ok := s.users[id]
	if !ok {
		return models.ErrNotFound
	}
	user.Password = passwordHash
	return nil
}

func (s *fakeUserStore) UpdateLastLogin(_ context.Context, id primitive.ObjectID, at time.Time) error {
	user, ok := s.users[id]
	if !ok {
		return models.ErrNotFound
	}
	user.LastLogin = at
	return nil
}

func (s *fakeUserStore) SetResetToken(_ context.Context, id primitive.ObjectID, token string, expiry time.Time) error {
	user, ok := s.users[id]
	if !ok {
		return models.ErrNotFound
	}
	user.ResetToken = token
	user.ResetTokenExpiry = expiry
	return nil
}

func (s *fakeUserStore) FindByResetToken(_ context.Context, token string) (*models.User, error) {
	for _, user := range s.users {
		if user.ResetToken != "" && user.ResetToken == token {
			return copyUser(user), nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *fakeUserStore) ResetPassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	user, ok := s.users[id]
	if !ok {
		return models.ErrNotFound
	}
	user.Password = passwordHash
	user.ResetToken = ""
	user.ResetTokenExpiry = time.Time{}
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) SetVideoLiked(_ context.Context, userID, videoID primitive.ObjectID, liked bool) error {
	user, ok := s.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	for i, id := range user.LikedVideos {
		if id == videoID {
			if !liked {
				user.LikedVideos = append(user.LikedVideos[:i], user.LikedVideos[i+1:]...)
			}
			return nil
		}
	}
	if liked {
		user.LikedVideos = append(user.LikedVideos, videoID)
	}
	return nil
}

func (s *fakeUserStore) CountLikes(_ context.Context, videoID primitive.ObjectID) (int, error) {
	count := 0
	for _, user := range s.users {
		for _, id := range user.LikedVideos {
			if id == videoID {
				count++
			}
		}
	}
	return count, nil
}

func (s *fakeUserStore) AddFavorite(_ context.Context, userID primitive.ObjectID, videoRef string) error {
	user, ok := s.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	for _, ref := range user.FavoriteVideos {
		if ref == videoRef {
			return models.ErrInvalidArgument
		}
	}
	user.FavoriteVideos = append(user.FavoriteVideos, videoRef)
	return nil
}

func (s *fakeUserStore) RemoveFavorite(_ context.Context, userID primitive.ObjectID, videoRef string) error {
	user, ok := s.users[userID]
	if !ok {
		return models.ErrNotFound
	}
	for i, ref := range user.FavoriteVideos {
		if ref == videoRef {
			user.FavoriteVideos = append(user.FavoriteVideos[:i], user.FavoriteVideos[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeVideoStore struct {
	videos map[primitive.ObjectID]*models.Video
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{videos: make(map[primitive.ObjectID]*models.Video)}
}

func (s *fakeVideoStore) add(video *models.Video) *models.Video {
	if video.ID.IsZero() {
		video.ID = primitive.NewObjectID()
	}
	s.videos[video.ID] = video
	return video
}

func copyVideo(video *models.Video) *models.Video {
	clone := *video
	clone.Ratings = append([]models.Rating(nil), video.Ratings...)
	clone.Comments = append([]models.Comment(nil), video.Comments...)
	return &clone
}

func (s *fakeVideoStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Video, error) {
	video, ok := s.videos[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return copyVideo(video), nil
}

func (s *fakeVideoStore) List(_ context.Context, offset, limit int) ([]models.Video, int64, error) {
	all := make([]models.Video, 0, len(s.videos))
	for _, video := range s.videos {
		all = append(all, *copyVideo(video))
	}
	total := int64(len(all))
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (s *fakeVideoStore) UpsertFromCatalog(_ context.Context, video *models.Video) (bool, error) {
	for _, existing := range s.videos {
		if existing.PexelsID == video.PexelsID {
			return false, nil
		}
	}
	s.add(copyVideo(video))
	return true, nil
}

func (s *fakeVideoStore) SaveRatings(_ context.Context, video *models.Video) error {
	stored, ok := s.videos[video.ID]
	if !ok {
		return models.ErrNotFound
	}
	stored.Ratings = append([]models.Rating(nil), video.Ratings...)
	stored.AverageRating = video.AverageRating
	return nil
}

func (s *fakeVideoStore) SaveComments(_ context.Context, video *models.Video) error {
	stored, ok := s.videos[video.ID]
	if !ok {
		return models.ErrNotFound
	}
	stored.Comments = append([]models.Comment(nil), video.Comments...)
	return nil
}

func (s *fakeVideoStore) SetLikesCount(_ context.Context, id primitive.ObjectID, count int) error {
	stored, ok := s.videos[id]
	if !ok {
		return models.ErrNotFound
	}
	if count < 0 {
		count = 0
	}
	stored.LikesCount = count
	return nil
}

type fakeCatalog struct {
	popular []models.PexelsVideo
	results []models.PexelsVideo
}

func (c *fakeCatalog) FetchPopular(context.Context, int, int) ([]models.PexelsVideo, error) {
	entries := c.popular
	c.popular = nil
	return entries, nil
}

func (c *fakeCatalog) SearchVideos(context.Context, string, int, int) ([]models.PexelsVideo, error) {
	entries := c.results
	c.results = nil
	return entries, nil
}

type fakeMailer struct {
	emails []string
	tokens []string
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.emails = append(m.emails, email)
	m.tokens = append(m.tokens, token)
	return nil
}
