package security

import (
	"time"

	"github.com/google/uuid"
)

// Maker makes a new token
type Maker interface {
	// CreateToken creates a token carrying sessionID that expires after duration
	CreateToken(sessionID uuid.UUID, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not
	VerifyToken(token string) (*Payload, error)
}
