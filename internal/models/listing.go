package models

import (
	"time"

	"github.com/google/uuid"
)

type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"
	ListingStatusSoldOut  ListingStatus = "sold_out"
)

// ValidListingStatus reports whether s is one of the moderation states.
// Transitions themselves are unconstrained: an admin may move a listing
// from any status to any other.
func ValidListingStatus(s ListingStatus) bool {
	switch s {
	case ListingStatusPending, ListingStatusApproved, ListingStatusRejected, ListingStatusSoldOut:
		return true
	}
	return false
}

// Listing is a property record eligible for public display once approved.
// Price is held in the smallest currency unit (whole rupees) and is never
// negative. Bedrooms/Bathrooms are string-encoded because "4+" is a legal
// value in BHK notation.
type Listing struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Location     string        `json:"location"`
	Price        int64         `json:"price"`
	Area         float64       `json:"area"`
	Bedrooms     string        `json:"bedrooms"`
	Bathrooms    string        `json:"bathrooms"`
	Furnishing   string        `json:"furnishing"`
	PropertyType string        `json:"property_type"`
	Amenities    []string      `json:"amenities"`
	Age          string        `json:"age"`
	PosterName   string        `json:"poster_name"`
	PosterPhone  string        `json:"poster_phone"`
	PosterEmail  string        `json:"poster_email"`
	Status       ListingStatus `json:"status"`
	SoldOutDate  *time.Time    `json:"sold_out_date,omitempty"`
	Hidden       bool          `json:"hidden"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Versioned
}

func (l *Listing) GetID() string { return l.ID.String() }
