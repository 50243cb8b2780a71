package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile mirrors the externally-managed auth account. Only the display
// fields and the admin role flag live here; credential handling is out of
// scope for this service.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
