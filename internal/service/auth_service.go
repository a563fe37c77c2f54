package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredentials = errors.New("username and password required")
)

type IAuthService interface {
	Register(ctx context.Context, username, password, role string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	EnsureDefaultUsers(ctx context.Context) error
}

type AuthService struct {
	userRepo db.IUserRepository
}

func NewAuthService(userRepo db.IUserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (a *AuthService) Register(ctx context.Context, username, password, role string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if role == "" {
		role = model.RoleUser
	}

	if existing, err := a.userRepo.GetUserByUsername(ctx, username); err == nil && existing != nil {
		return nil, ErrUserExists
	} else if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := a.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login deliberately returns the same error for an unknown user and a wrong
// password.
func (a *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := a.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (a *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return a.userRepo.ListUsers(ctx)
}

// EnsureDefaultUsers seeds the admin/user1 accounts the storefront ships with.
func (a *AuthService) EnsureDefaultUsers(ctx context.Context) error {
	defaults := []struct {
		username string
		role     string
	}{
		{"admin", model.RoleAdmin},
		{"user1", model.RoleUser},
	}

	for _, d := range defaults {
		_, err := a.Register(ctx, d.username, "password", d.role)
		if err != nil && !errors.Is(err, ErrUserExists) {
			return err
		}
	}
	return nil
}
