package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the authenticated admin email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenManager issues and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenManager(secret []byte, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, issuer: issuer, ttl: ttl}
}

// Generate mints a signed token for email, valid for the configured TTL
// from now.
func (t *TokenManager) Generate(email string, now time.Time) (string, time.Time, error) {
	expires := now.Add(t.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Email: email,
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Verify parses tokenString and returns the email it was issued for.
func (t *TokenManager) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tk *jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}
