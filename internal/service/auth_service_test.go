package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestRegisterLoginRoundtrip(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&memUserStore{}, testSecret)

	u, _, err := svc.Register(ctx, SignupData{
		Username: "ahmed",
		Email:    "Ahmed@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "ahmed@example.com", u.Email)
	require.Equal(t, "user", u.Role)
	require.NotEqual(t, "secret1", u.Password)

	got, token, err := svc.Login(ctx, "ahmed@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, u.ID.Hex(), claims["sub"])
	require.Equal(t, "user", claims["role"])

	exp := int64(claims["exp"].(float64))
	require.Greater(t, exp, time.Now().Add(6*24*time.Hour).Unix())
}

func TestRegisterEmailTaken(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&memUserStore{}, testSecret)

	_, _, err := svc.Register(ctx, SignupData{Username: "a", Email: "dup@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, SignupData{Username: "b", Email: "Dup@example.com", Password: "secret2"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&memUserStore{}, testSecret)

	_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Register(ctx, SignupData{Username: "a", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
