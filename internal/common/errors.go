package common

import "errors"

var (
	// Credential errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrNoRefreshToken = errors.New("no refresh token")

	// Session errors.
	ErrNotLoggedIn = errors.New("not logged in")
)
