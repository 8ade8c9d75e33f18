package tokenpkg

import (
	"time"

	"github.com/google/uuid"
)

// Maker is an interface for managing access tokens.
type Maker interface {
	// CreateToken creates a new token for the given user id and duration.
	CreateToken(userID uuid.UUID, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}
