package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactRequestStatus string

const (
	ContactRequestStatusPending   ContactRequestStatus = "pending"
	ContactRequestStatusContacted ContactRequestStatus = "contacted"
)

// ContactRequest is a listing-specific lead. The property code/title/location
// are snapshotted at submission time so the lead survives later edits.
type ContactRequest struct {
	ID               uuid.UUID            `json:"id"`
	ListingID        uuid.UUID            `json:"property_id"`
	PropertyCode     string               `json:"property_code"`
	PropertyTitle    string               `json:"property_title"`
	PropertyLocation string               `json:"property_location"`
	UserID           uuid.UUID            `json:"user_id"`
	UserName         string               `json:"user_name"`
	UserEmail        string               `json:"user_email"`
	UserPhone        *string              `json:"user_phone,omitempty"`
	Status           ContactRequestStatus `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}
