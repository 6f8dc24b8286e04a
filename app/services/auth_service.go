package services

import (
	"context"
	"errors"

	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/app/repositories"
	"github.com/warungku/warung/pkg/auth"
	"github.com/warungku/warung/pkg/logger"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is what a successful login returns.
type TokenPair struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

// AuthService registers seller accounts and issues tokens.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a seller account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	taken, err := s.users.EmailExists(in.Email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Name: in.Name, Email: in.Email, Password: hash}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, err
	}

	logger.WithCtx(ctx).Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login checks credentials and issues an access/refresh token pair. A
// missing account and a wrong password produce the same error.
func (s *AuthService) Login(in LoginInput) (TokenPair, error) {
	user, err := s.users.FindByEmail(in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return TokenPair{}, ErrInvalidCredentials
	}

	access, err := auth.GenerateToken(user.ID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// Refresh exchanges a valid refresh token for a new pair. Access tokens are
// not accepted here: a leaked short-lived token must not extend itself.
func (s *AuthService) Refresh(token string) (TokenPair, error) {
	claims, err := auth.ValidateToken(token)
	if err != nil || claims.Type != auth.TokenRefresh {
		return TokenPair{}, ErrInvalidCredentials
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	access, err := auth.GenerateToken(user.ID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := auth.GenerateRefreshToken(user.ID)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// Me returns the authenticated user's profile.
func (s *AuthService) Me(userID uint) (models.User, error) {
	return s.users.FindByID(userID)
}
