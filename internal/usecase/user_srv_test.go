package usecase

import (
	"context"
	"testing"

	"studio-site/internal/data/entity"
	"studio-site/internal/dto/request"
	"studio-site/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserGetProfile(t *testing.T) {
	repo := newMemUserRepo()
	srv := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	user := newTestUser("customer@studio.test", "secret123", entity.RoleUser)
	require.NoError(t, repo.Create(ctx, user))

	profile, err := srv.GetProfile(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, user.Email, profile.Email)

	_, err = srv.GetProfile(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = srv.GetProfile(ctx, "not-a-uuid")
	assert.Error(t, err)
}

func TestUserChangePassword(t *testing.T) {
	repo := newMemUserRepo()
	srv := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	user := newTestUser("customer@studio.test", "secret123", entity.RoleUser)
	require.NoError(t, repo.Create(ctx, user))

	// Wrong current password is rejected without touching the hash
	err := srv.ChangePassword(ctx, user.ID.String(), &request.ChangePasswordRequest{
		CurrentPassword: "wrong-pass",
		NewPassword:     "newsecret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, utils.CheckPasswordHash("secret123", user.PasswordHash))

	err = srv.ChangePassword(ctx, user.ID.String(), &request.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("newsecret", user.PasswordHash))
	assert.False(t, utils.CheckPasswordHash("secret123", user.PasswordHash))
}

func TestUserDeactivate(t *testing.T) {
	repo := newMemUserRepo()
	srv := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	user := newTestUser("admin2@studio.test", "secret123", entity.RoleAdmin)
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, srv.DeactivateUser(ctx, user.ID.String()))
	assert.False(t, user.IsActive)

	assert.ErrorIs(t, srv.DeactivateUser(ctx, uuid.NewString()), ErrUserNotFound)
}

func TestUserGetAllPagination(t *testing.T) {
	repo := newMemUserRepo()
	srv := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Create(ctx, newTestUser(uuid.NewString()+"@studio.test", "secret123", entity.RoleUser)))
	}

	page, err := srv.GetAllUsers(ctx, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, int64(15), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	page, err = srv.GetAllUsers(ctx, &request.PaginatedRequest{Page: 2, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
}
