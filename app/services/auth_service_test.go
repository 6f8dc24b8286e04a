package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warungku/warung/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	setupDB(t)
	svc := NewAuthService()

	user, err := svc.Register(context.Background(), RegisterInput{
		Name: "Bu Tini", Email: "tini@warung.test", Password: "rahasia-banget",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", user.Password, "password must be hashed")

	pair, err := svc.Login(LoginInput{Email: "tini@warung.test", Password: "rahasia-banget"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := auth.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupDB(t)
	svc := NewAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@b.c", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "a@b.c", Password: "password2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	setupDB(t)
	svc := NewAuthService()

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@b.c", Password: "password1",
	})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "a@b.c", Password: "salah"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown account fails identically.
	_, err = svc.Login(LoginInput{Email: "ghost@b.c", Password: "salah"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	setupDB(t)
	svc := NewAuthService()

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@b.c", Password: "password1",
	})
	require.NoError(t, err)

	pair, err := svc.Login(LoginInput{Email: "a@b.c", Password: "password1"})
	require.NoError(t, err)

	renewed, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)

	_, err = svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// An access token is signed with the same key but must not be
	// exchangeable for a fresh pair.
	_, err = svc.Refresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
