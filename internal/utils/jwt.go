package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignSessionToken wraps an opaque session token in a signed JWT so the
// cookie value is tamper-evident. Expiry is enforced server-side on the
// session row, not in the token, so sliding sessions stay valid.
func SignSessionToken(secret, token string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  token,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signed.SignedString([]byte(secret))
}

// ParseSessionToken verifies the cookie signature and returns the
// embedded session token.
func ParseSessionToken(secret, signed string) (string, error) {
	token, err := jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok && token.Valid && claims.Subject != "" {
		return claims.Subject, nil
	}

	return "", jwt.ErrTokenInvalidClaims
}
