package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/lms-content-api/internal/models"
)

type mockUserRepo struct {
	users          map[string]*models.User
	lastLoginCalls int
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	for _, user := range users {
		repo.users[user.Email] = user
	}
	return repo
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	m.lastLoginCalls++
	return nil
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           "user-1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		FullName:     "Admin User",
		Role:         models.RoleAdmin,
		Active:       true,
	}
}

func testAuthConfig() AuthConfig {
	return AuthConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "lms-content-api"}
}

func TestAuthServiceLogin(t *testing.T) {
	repo := newMockUserRepo(testUser(t, "s3cret"))
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, 1, repo.lastLoginCalls)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := newMockUserRepo(testUser(t, "s3cret"))
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@example.com", Password: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
	assert.Zero(t, repo.lastLoginCalls)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestAuthServiceLoginInactiveAccount(t *testing.T) {
	user := testUser(t, "s3cret")
	user.Active = false
	svc := NewAuthService(newMockUserRepo(user), nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inactive")
}

func TestAuthServiceLoginValidatesPayload(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
}

func TestAuthServiceValidateToken(t *testing.T) {
	repo := newMockUserRepo(testUser(t, "s3cret"))
	svc := NewAuthService(repo, nil, nil, testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "lms-content-api", claims.Issuer)
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), nil, nil, testAuthConfig())

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestAuthServiceValidateTokenRejectsWrongSecret(t *testing.T) {
	repo := newMockUserRepo(testUser(t, "s3cret"))
	issuing := NewAuthService(repo, nil, nil, AuthConfig{Secret: "other-secret", Expiration: time.Hour})

	resp, err := issuing.Login(context.Background(), models.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)

	verifying := NewAuthService(repo, nil, nil, testAuthConfig())
	_, err = verifying.ValidateToken(resp.AccessToken)
	require.Error(t, err)
}

func TestAuthServiceCurrentUser(t *testing.T) {
	user := testUser(t, "s3cret")
	svc := NewAuthService(newMockUserRepo(user), nil, nil, testAuthConfig())

	resolved, err := svc.CurrentUser(context.Background(), &models.JWTClaims{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, user.Email, resolved.Email)

	_, err = svc.CurrentUser(context.Background(), &models.JWTClaims{UserID: "ghost"})
	require.Error(t, err)
}
