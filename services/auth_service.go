package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"vidhub-backend/helper"
	"vidhub-backend/models"
)

type AuthService struct {
	userStore     UserStore
	mailer        Mailer
	jwtSecret     string
	resetTokenTTL time.Duration
}

func NewAuthService(userStore UserStore, mailer Mailer, jwtSecret string, resetTokenTTL time.Duration) *AuthService {
	return &AuthService{
		userStore:     userStore,
		mailer:        mailer,
		jwtSecret:     jwtSecret,
		resetTokenTTL: resetTokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	existing, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return "", err
	}
	if existing != nil {
		return "", models.E(models.ErrInvalidArgument, "user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Email:          req.Email,
		Password:       string(hashedPassword),
		Name:           req.Name,
		Age:            req.Age,
		Role:           models.RoleUser,
		CreatedAt:      time.Now(),
		LikedVideos:    []primitive.ObjectID{},
		FavoriteVideos: []string{},
	}

	if err := s.userStore.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", models.E(models.ErrUnauthenticated, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", models.E(models.ErrUnauthenticated, "invalid credentials")
	}

	if err := s.userStore.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		return "", err
	}

	return s.issueToken(user)
}

// ForgotPassword stores a fresh single-use reset token and hands it to the
// mailer. Unknown emails succeed silently so the endpoint does not reveal
// which accounts exist.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userStore.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token, err := helper.GenerateResetToken()
	if err != nil {
		return err
	}

	expiry := time.Now().Add(s.resetTokenTTL)
	if err := s.userStore.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(ctx, user.Email, token)
}

// ResetPassword consumes a reset token. The token is single use: the store
// clears it in the same update that writes the new hash.
func (s *AuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	user, err := s.userStore.FindByResetToken(ctx, req.Token)
	if errors.Is(err, models.ErrNotFound) {
		return models.E(models.ErrInvalidArgument, "invalid or expired reset token")
	}
	if err != nil {
		return err
	}

	if time.Now().After(user.ResetTokenExpiry) {
		return models.E(models.ErrInvalidArgument, "invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userStore.ResetPassword(ctx, user.ID, string(hashedPassword))
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})

	return token.SignedString([]byte(s.jwtSecret))
}
