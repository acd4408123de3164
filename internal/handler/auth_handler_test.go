package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/lms-content-api/internal/models"
	"github.com/noah-isme/lms-content-api/internal/service"
)

type userRepoMock struct {
	user *models.User
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.user == nil || m.user.Email != email {
		return nil, sql.ErrNoRows
	}
	return m.user, nil
}

func (m *userRepoMock) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.user == nil || m.user.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.user, nil
}

func (m *userRepoMock) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	return nil
}

func newAuthHandlerForTest(t *testing.T) *AuthHandler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &userRepoMock{user: &models.User{
		ID:           "user-1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		FullName:     "Admin User",
		Role:         models.RoleAdmin,
		Active:       true,
	}}
	svc := service.NewAuthService(repo, nil, nil, service.AuthConfig{Secret: "test-secret", Expiration: time.Hour})
	return NewAuthHandler(svc)
}

func TestAuthHandlerLogin(t *testing.T) {
	handler := newAuthHandlerForTest(t)

	c, w := testContext(t, http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret",
	})
	handler.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
}

func TestAuthHandlerLoginInvalidBody(t *testing.T) {
	handler := newAuthHandlerForTest(t)

	c, w := testContext(t, http.MethodPost, "/auth/login", nil)
	c.Request.Body = http.NoBody
	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerLoginWrongPassword(t *testing.T) {
	handler := newAuthHandlerForTest(t)

	c, w := testContext(t, http.MethodPost, "/auth/login", models.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
