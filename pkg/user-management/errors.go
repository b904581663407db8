package usermanagement

import "errors"

var (
	// ErrAccountExists is only surfaced at registration and conversion
	// completion. Request-a-secret endpoints stay zero-disclosure and must
	// never forward it.
	ErrAccountExists = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password"; the two must stay indistinguishable for callers.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidSecret deliberately conflates wrong, expired and already
	// used codes or tokens.
	ErrInvalidSecret = errors.New("invalid or expired secret")

	// ErrUnknownAccount is internal to the flows; handlers translate it
	// into a zero-disclosure success where required.
	ErrUnknownAccount = errors.New("no account for this email")
)
