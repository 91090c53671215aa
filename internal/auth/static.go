package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Static authenticates a single configured admin account: constant-time
// email comparison plus a bcrypt check of the password against the stored
// hash.
type Static struct {
	email        string
	passwordHash []byte
	tokens       *TokenManager
	now          func() time.Time
}

func NewStatic(email string, passwordHash []byte, tokens *TokenManager) *Static {
	return &Static{email: email, passwordHash: passwordHash, tokens: tokens, now: time.Now}
}

// Authenticate verifies creds against the configured account and mints a
// session token. Email and password mismatches are indistinguishable to the
// caller.
func (s *Static) Authenticate(ctx context.Context, creds Credentials) (*Session, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(creds.Email), []byte(s.email)) == 1

	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(creds.Password))
	if !emailOK || err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Generate(s.email, s.now())
	if err != nil {
		return nil, err
	}
	return &Session{Email: s.email, Token: token, ExpiresAt: expires}, nil
}
