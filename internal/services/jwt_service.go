package services

import (
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/config"
	"github.com/bhoomikart/backend/internal/middleware"
)

type JWTService interface {
	GenerateAccessToken(subjectID uuid.UUID, tokenExpiry time.Duration) (string, error)
}

type jwtService struct {
	privateKey *rsa.PrivateKey
}

func NewJWTService(cfg *config.Config) JWTService {
	return &jwtService{privateKey: cfg.RSAPrivateKey}
}

func (j *jwtService) GenerateAccessToken(subjectID uuid.UUID, tokenExpiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"iss": middleware.TokenIssuer,
		"sub": subjectID.String(),
		"exp": time.Now().Add(tokenExpiry).Unix(),
		"iat": time.Now().Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(j.privateKey)
}
