// Package auth provides the pluggable authenticator the login flow depends
// on. The console never compares raw credentials itself; it only knows this
// interface and the session it yields.
package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Credentials is what the login form collects.
type Credentials struct {
	Email    string
	Password string
}

// Session is an authenticated admin session. Token is opaque to callers;
// the transport forwards it as a bearer credential.
type Session struct {
	Email     string
	Token     string
	ExpiresAt time.Time
}

// Authenticator verifies credentials and mints a session.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*Session, error)
}
