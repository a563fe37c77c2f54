package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "s3cret", "")
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, user.Role)
	require.NotEqual(t, "s3cret", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))

	got, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, user.UserID, got.UserID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other", "")
	require.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterMissingCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "s3cret", "")
	require.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Register(ctx, "alice", "", "")
	require.ErrorIs(t, err, ErrMissingCredentials)
}

// Unknown user and wrong password must be indistinguishable to the caller.
func TestLoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureDefaultUsersIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultUsers(ctx))
	require.NoError(t, svc.EnsureDefaultUsers(ctx))

	admin, err := repo.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, admin.Role)

	user1, err := repo.GetUserByUsername(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, user1.Role)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	_, err = svc.Login(ctx, "admin", "password")
	require.NoError(t, err)
}
