// Package common contains constants and sentinel errors shared by the
// DevPair client packages.
package common

// HTTP headers set on every outbound API request.
const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	RequestIDHeader     = "X-Request-ID"
)

// Keys of the persisted credential pair.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)
