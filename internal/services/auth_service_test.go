package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	registered, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)
	assert.Equal(t, "a@example.com", registered.User.Email)

	// The stored password must be a bcrypt hash, never the plaintext.
	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "a@example.com").Error)
	assert.NotEqual(t, "password123", user.Password)

	loggedIn, err := svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = svc.Login(&dto.LoginRequest{Email: "a@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterShortPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "short"})
	assert.Error(t, err)
}

func TestAccessTokenClaims(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, "a@example.com", claims["email"])
}

func TestRefreshRotation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	first, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The consumed token is revoked and cannot be replayed.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: second.RefreshToken})
	assert.NoError(t, err)
}

func TestRefreshUnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "never-issued"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{Email: "a@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
