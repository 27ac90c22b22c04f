package usecase

import (
	"context"
	"testing"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/internal/dto/request"
	"marrakech-tours/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, repo *repository.Repository, username, password string, role entity.UserRole) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}

	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func TestLoginCreatesSession(t *testing.T) {
	svc, repo := newTestService(t)
	createTestUser(t, repo, "nadia", "Secret123!", entity.RoleSuperadmin)

	resp, err := svc.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "nadia",
		Password: "Secret123!",
	}, "test-agent", "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "nadia", resp.User.Username)
	assert.Equal(t, entity.RoleSuperadmin, resp.User.Role)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	_, err = uuid.Parse(resp.Token)
	require.NoError(t, err)

	session, err := repo.Session.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo := newTestService(t)
	createTestUser(t, repo, "ahmed", "Secret123!", entity.RoleAdmin)

	_, err := svc.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "ahmed",
		Password: "wrong",
	}, "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	}, "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, repo := newTestService(t)
	createTestUser(t, repo, "yahia", "Secret123!", entity.RoleAdmin)

	resp, err := svc.Auth.Login(context.Background(), &request.LoginRequest{
		Username: "yahia",
		Password: "Secret123!",
	}, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Auth.Logout(context.Background(), resp.Token))

	session, err := repo.Session.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestCurrentUserNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Auth.CurrentUser(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
