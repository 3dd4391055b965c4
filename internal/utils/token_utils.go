package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateOwnerToken signs an HS256 bearer token whose subject is ownerID.
// The API has no login flow, so tokens are issued out of band with this helper.
func GenerateOwnerToken(ownerID string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	if ownerID == "" {
		return "", errors.New("owner id is required")
	}
	if secret == "" {
		return "", errors.New("signing secret is required")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   ownerID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
