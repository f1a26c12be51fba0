package services

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bhoomikart/backend/internal/middleware"
)

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	svc := &jwtService{privateKey: key}
	subject := uuid.New()

	token, err := svc.GenerateAccessToken(subject, 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := middleware.ValidateToken(token, &key.PublicKey)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, subject.String(), claims["sub"])
	require.Equal(t, middleware.TokenIssuer, claims["iss"])
	require.NotEmpty(t, claims["jti"])
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	svc := &jwtService{privateKey: key}
	token, err := svc.GenerateAccessToken(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = middleware.ValidateToken(token, &key.PublicKey)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	signKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	svc := &jwtService{privateKey: signKey}
	token, err := svc.GenerateAccessToken(uuid.New(), time.Minute)
	require.NoError(t, err)

	_, err = middleware.ValidateToken(token, &otherKey.PublicKey)
	require.Error(t, err)
}
