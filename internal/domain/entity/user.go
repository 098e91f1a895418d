// Package entity contains the pure domain objects of the city portal.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that may administer portal content.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`

	// PasswordHash is the salted bcrypt hash of the password. It is never
	// serialized into API responses.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
