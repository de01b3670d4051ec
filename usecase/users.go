package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"quicknotes/model"
	"quicknotes/repository"
	"quicknotes/services"
	"quicknotes/utils"
)

type UserService struct {
	UsersRepo repository.UserStore
	Tokens    *services.TokenService
	// Cache is optional; nil disables caching.
	Cache  services.UserCache
	Logger *slog.Logger
	Now    func() time.Time
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

func (s *UserService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Register creates the account and returns it with a fresh access token.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, "", ErrMissingFields
	}

	existing, err := s.UsersRepo.FindUserByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUserExists
	}

	hashed, err := services.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:        utils.GenerateID(),
		FullName:  in.FullName,
		Email:     in.Email,
		Password:  hashed,
		CreatedOn: s.now(),
	}
	if err := utils.ValidateStruct(user); err != nil {
		return nil, "", err
	}

	if err := s.UsersRepo.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrUserExists
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger().InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, token, nil
}

// Login checks the credentials and returns the user with a fresh access token.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil {
		s.logger().WarnContext(ctx, "stored password unreadable", "user_id", user.ID, "error", err)
		return nil, "", ErrInvalidCredentials
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser re-reads the caller from the store, which is the one place a token
// identity is checked against current data.
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	if s.Cache != nil {
		cached, err := s.Cache.GetUser(ctx, userID)
		switch {
		case err != nil:
			utils.TrackCacheOperation("user", "error")
			s.logger().WarnContext(ctx, "user cache read failed", "error", err)
		case cached != nil:
			utils.TrackCacheOperation("user", "hit")
			return cached, nil
		default:
			utils.TrackCacheOperation("user", "miss")
		}
	}

	user, err := s.UsersRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.SetUser(ctx, user); err != nil {
			utils.TrackError("cache", "user_cache_set_failed")
			s.logger().WarnContext(ctx, "user cache write failed", "error", err)
		}
	}
	return user, nil
}
