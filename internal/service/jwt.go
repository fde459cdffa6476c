package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret []byte
	tokenTTL  = 10 * time.Minute
)

var ErrInvalidToken = errors.New("invalid token")

// TokenCookieName is the session cookie the signed JWT travels in.
const TokenCookieName = "token"

// TokenClaims is the signed session payload: the owning user id plus
// the standard time-based claims.
type TokenClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// InitJWT sets the signing secret and token lifetime. Must be called
// once at startup before any token is issued or parsed.
func InitJWT(secret string, ttl time.Duration) {
	if secret == "" {
		panic("jwt secret is empty")
	}
	jwtSecret = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func GenerateJWT(userID string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseJWT verifies the signature and time claims and returns the user id.
// A token whose payload carries no user id is rejected even when the
// signature is valid.
func ParseJWT(tokenString string) (string, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.ID == "" {
		return "", ErrInvalidToken
	}

	return claims.ID, nil
}
