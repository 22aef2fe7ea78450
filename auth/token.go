package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "group-talk"

// DeviceClaims identifies the user a device token was issued to.
type DeviceClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenSigner issues and checks the device tokens the push channel requires.
type TokenSigner struct {
	key      []byte
	duration time.Duration
}

func NewTokenSigner(secret string, duration time.Duration) TokenSigner {
	return TokenSigner{key: []byte(secret), duration: duration}
}

// Generate creates an HS256 token for username.
func (s TokenSigner) Generate(username string) (string, error) {
	now := time.Now()
	claims := &DeviceClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique per issue, so a refreshed token never equals the one it replaces
			ID:        uuid.NewString(),
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Validate parses a token and verifies its signature and expiration.
func (s TokenSigner) Validate(tokenString string) (*DeviceClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &DeviceClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*DeviceClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
