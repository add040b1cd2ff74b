package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account allowed to modify the registry.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
