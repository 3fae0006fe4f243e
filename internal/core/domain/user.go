package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account allowed to manage campaigns. PasswordHash is never
// exposed outside the auth use case.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
