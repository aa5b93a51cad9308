package utils

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret is the key shared with the auth service that issues tokens. This
// client only verifies; it never mints tokens of its own.
var JWTSecret []byte

// InitJWT reads the verification secret from the environment. Call it after
// godotenv.Load so a secret supplied via .env is honored; package init would
// run before the file is read.
func InitJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Development fallback, matches the auth service's default.
		secret = "TasteTrackDevSecret"
	}
	JWTSecret = []byte(secret)
}

type CustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// ParseToken verifies a bearer token from the auth service and returns its
// claims.
func ParseToken(tokenString string) (*CustomClaims, error) {
	if len(JWTSecret) == 0 {
		InitJWT()
	}
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
