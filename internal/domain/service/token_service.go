package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is the single opaque error returned for every token
// verification failure. Callers must not learn whether the token was
// malformed, forged, or merely expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue produces a signed token bound to the given user, valid for the
	// configured window from issuance time.
	Issue(userID uuid.UUID) (string, error)

	// Verify decodes the token, checking signature and expiry atomically.
	// Any defect yields ErrInvalidToken; it never returns a default identity.
	Verify(tokenString string) (uuid.UUID, error)
}
