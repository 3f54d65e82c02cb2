// Package tokenx inspects access tokens issued by the DevPair API.
//
// The client never holds the signing key, so claims are read without
// signature verification and are only used to skip requests that are
// certain to be rejected.
package tokenx

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devpair/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var errNoExpiry = errors.New("token has no exp claim")

// ExpiresAt returns the exp claim of a JWT.
func ExpiresAt(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// Expired reports whether token is a JWT whose exp is not after now.
// Tokens that cannot be parsed, or carry no exp, are not reported as
// expired; the server stays the authority for those.
func Expired(token string, now time.Time) bool {
	exp, err := ExpiresAt(token)
	if err != nil {
		return false
	}
	return !exp.After(now)
}
