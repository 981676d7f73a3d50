// Package common defines shared constants and sentinel errors used across
// client and server layers of jobkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// ErrAuth means the identity could not be established or the token was rejected.
	ErrAuth = errors.New("authentication required")
	// ErrWrite means an insert or update violated a constraint.
	ErrWrite = errors.New("write rejected")
	// ErrNotFound means the row does not exist or belongs to another user.
	ErrNotFound = errors.New("not found")
	// ErrNetwork covers unreachable backends and timeouts. Retryable by the user.
	ErrNetwork = errors.New("network unavailable")
	// ErrSessionChanged is returned when a response arrives after the session
	// it was issued under has ended.
	ErrSessionChanged = errors.New("session changed")

	ErrInternal      = errors.New("internal error")
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUnknownColumn = errors.New("unknown column")

	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
