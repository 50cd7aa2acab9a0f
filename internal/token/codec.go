// Package token decodes bearer tokens without verifying them.
//
// Decoding here is NOT a trust boundary: the signature is never checked and
// the contents are good for display and optimistic UI hints only. The server
// revalidates every protected request and is the sole authority on whether a
// token is acceptable.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"wastedesk/internal/models"
)

// ErrMalformed indicates the token is structurally unusable (not three
// segments, payload not well-formed JSON, required claims missing).
var ErrMalformed = errors.New("malformed token")

// Claims are the payload fields the console uses.
type Claims struct {
	Subject   string
	Role      models.Role
	ExpiresAt int64 // Unix seconds
}

// Decode extracts the payload of a bearer token without verifying its
// signature. It never panics and never performs I/O.
func Decode(raw string) (Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("%w: unexpected claims type", ErrMalformed)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return Claims{}, fmt.Errorf("%w: missing sub claim", ErrMalformed)
	}

	expiry, err := mapClaims.GetExpirationTime()
	if err != nil || expiry == nil {
		return Claims{}, fmt.Errorf("%w: missing exp claim", ErrMalformed)
	}

	role, _ := mapClaims["role"].(string)

	return Claims{
		Subject:   subject,
		Role:      models.Role(role),
		ExpiresAt: expiry.Unix(),
	}, nil
}
