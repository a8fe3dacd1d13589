package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lifeline-connect/lifeline-backend/internal/config"
	"github.com/lifeline-connect/lifeline-backend/internal/dto"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthService, *memory.UserStore, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:        "auth-test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
	users := memory.NewUserStore()
	return NewAuthService(users, memory.NewRefreshTokenStore(), cfg), users, cfg
}

func seedAccount(t *testing.T, users *memory.UserStore, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Email: email, Password: string(hash), Role: models.RoleUser}
	require.NoError(t, users.Create(t.Context(), u))
	return u
}

func TestLoginIssuesVerifiableTokenPair(t *testing.T) {
	svc, users, cfg := newAuthFixture(t)
	seedAccount(t, users, "alice@example.com", "correct horse")

	resp, err := svc.Login(t.Context(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	parsed, err := jwt.Parse(resp.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", claims["email"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seedAccount(t, users, "alice@example.com", "correct horse")

	_, err := svc.Login(t.Context(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(t.Context(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seedAccount(t, users, "alice@example.com", "correct horse")

	first, err := svc.Login(t.Context(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	second, err := svc.Refresh(t.Context(), &dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The rotated-out token is dead.
	_, err = svc.Refresh(t.Context(), &dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The fresh one still works.
	_, err = svc.Refresh(t.Context(), &dto.RefreshRequest{RefreshToken: second.RefreshToken})
	require.NoError(t, err)
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Refresh(t.Context(), &dto.RefreshRequest{RefreshToken: "never-issued"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seedAccount(t, users, "alice@example.com", "correct horse")

	pair, err := svc.Login(t.Context(), &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(t.Context(), &dto.LogoutRequest{RefreshToken: pair.RefreshToken}))

	_, err = svc.Refresh(t.Context(), &dto.RefreshRequest{RefreshToken: pair.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
