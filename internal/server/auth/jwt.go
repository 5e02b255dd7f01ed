// Package auth signs and verifies the API keys presented to the record
// store. A key is an HS256 JWT carrying a role claim.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CODE-SECX/English-Sikho/internal/common"
)

// Issuer is written into and required from every key.
const Issuer = "sikho"

// Claims are the registered claims plus the caller's role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateAPIKey signs a key for role. A zero validity yields a key that
// never expires.
func GenerateAPIKey(role string, secretKey []byte, validity time.Duration) (string, error) {
	if !validRole(role) {
		return "", fmt.Errorf("unknown role %q", role)
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   Issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Role: role,
	}
	if validity != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// RoleFromAPIKey verifies the key and returns its role. Every failure wraps
// common.ErrInvalidToken.
func RoleFromAPIKey(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(Issuer))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || !validRole(claims.Role) {
		return "", common.ErrInvalidToken
	}

	return claims.Role, nil
}

func validRole(role string) bool {
	return role == common.RoleAnon || role == common.RoleService
}
