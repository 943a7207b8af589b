package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"vidhub-backend/models"
)

type UserService struct {
	userStore UserStore
}

func NewUserService(userStore UserStore) *UserService {
	return &UserService{userStore: userStore}
}

func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.userStore.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
	if err := s.userStore.UpdateProfile(ctx, userID, req.Name, req.Age); err != nil {
		return nil, err
	}
	return s.userStore.FindByID(ctx, userID)
}

func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req *models.ChangePasswordRequest) error {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return models.E(models.ErrInvalidArgument, "current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userStore.UpdatePassword(ctx, userID, string(hashedPassword))
}

// DeleteAccount removes an account. Users may delete themselves;
// administrators may delete anyone.
func (s *UserService) DeleteAccount(ctx context.Context, callerID, targetID primitive.ObjectID, callerRole string) error {
	if callerID != targetID && callerRole != models.RoleAdmin {
		return models.ErrForbidden
	}
	return s.userStore.Delete(ctx, targetID)
}

// AddFavorite appends an opaque video reference to the user's favorites.
// The favorites list is independent of the like relation.
func (s *UserService) AddFavorite(ctx context.Context, userID primitive.ObjectID, videoRef string) error {
	err := s.userStore.AddFavorite(ctx, userID, videoRef)
	if errors.Is(err, models.ErrInvalidArgument) {
		return models.E(models.ErrInvalidArgument, "already a favorite")
	}
	return err
}

func (s *UserService) RemoveFavorite(ctx context.Context, userID primitive.ObjectID, videoRef string) error {
	err := s.userStore.RemoveFavorite(ctx, userID, videoRef)
	if errors.Is(err, models.ErrNotFound) {
		return models.E(models.ErrNotFound, "not a favorite")
	}
	return err
}

func (s *UserService) ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.FavoriteVideos == nil {
		return []string{}, nil
	}
	return user.FavoriteVideos, nil
}
