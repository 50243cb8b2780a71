package models

import (
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// ListingMedia is one carousel entry of a listing. Rows are displayed in
// ascending DisplayOrder; uniqueness of the order within a listing is a
// convention, not a constraint.
type ListingMedia struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"property_id"`
	URL          string    `json:"image_url"`
	MediaType    MediaType `json:"media_type"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
