package services

import (
	"context"
	"errors"
	"fmt"

	"ecomm-api/internal/auth"
	"ecomm-api/internal/models"
	"ecomm-api/internal/repository"
)

var (
	// ErrInvalidRequest means a mandatory field was missing from the request.
	ErrInvalidRequest = errors.New("missing mandatory fields")
	// ErrNotFound means no user matched the given credentials.
	ErrNotFound = errors.New("no user found")
)

// AuthService handles registration, login and the admin bootstrap.
type AuthService struct {
	Users  repository.UserStore
	Tokens *auth.TokenService

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register persists a new user as-is and issues a token for it. There is no
// duplicate-email check and no hashing; the returned user has its password
// stripped.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return models.User{}, "", ErrInvalidRequest
	}

	user, err := s.Users.Insert(ctx, models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return models.User{}, "", err
	}

	user.Password = ""
	return user, token, nil
}

// Login authenticates by exact match on email and plaintext password.
// Missing fields fail with ErrInvalidRequest before any lookup.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", ErrInvalidRequest
	}

	user, err := s.Users.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, "", ErrNotFound
		}
		return models.User{}, "", err
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return models.User{}, "", err
	}

	user.Password = ""
	return user, token, nil
}

// EnsureDefaultAdmin creates the configured admin user if it does not exist.
// It runs on every process start and must never duplicate the admin.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.Users.FindByEmail(ctx, s.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("admin bootstrap lookup failed: %w", err)
	}

	_, err = s.Users.Insert(ctx, models.User{
		Name:     s.AdminName,
		Email:    s.AdminEmail,
		Password: s.AdminPassword,
		IsAdmin:  true,
	})
	if err != nil {
		return fmt.Errorf("admin bootstrap insert failed: %w", err)
	}
	return nil
}
