package dtos

import (
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
)

// MediaItem is one carousel entry submitted with a listing. URLs come from
// the upload endpoint; the poster orders them client-side.
type MediaItem struct {
	URL          string `json:"url" validate:"required,url"`
	MediaType    string `json:"media_type" validate:"required,oneof=image video"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// CreateListingRequest carries a new property submission. Price accepts the
// shorthand the posting form shows ("1.2cr", "95L", "9500000").
type CreateListingRequest struct {
	Title        string      `json:"title" validate:"required,min=3,max=200"`
	Description  string      `json:"description" validate:"max=5000"`
	Location     string      `json:"location" validate:"required,max=300"`
	Price        string      `json:"price" validate:"required"`
	Area         float64     `json:"area" validate:"gte=0"`
	Bedrooms     string      `json:"bedrooms" validate:"required,max=5"`
	Bathrooms    string      `json:"bathrooms" validate:"max=5"`
	Furnishing   string      `json:"furnishing" validate:"omitempty,oneof=furnished semi-furnished unfurnished"`
	PropertyType string      `json:"property_type" validate:"required,max=50"`
	Amenities    []string    `json:"amenities" validate:"dive,max=100"`
	Age          string      `json:"age" validate:"max=50"`
	PosterName   string      `json:"poster_name" validate:"required,max=100"`
	PosterPhone  string      `json:"poster_phone" validate:"required,max=20"`
	PosterEmail  string      `json:"poster_email" validate:"required,email"`
	Media        []MediaItem `json:"media" validate:"dive"`
}

// UpdateListingRequest is a full re-submission of the editable fields.
// A non-nil Media slice replaces the existing carousel.
type UpdateListingRequest struct {
	Title        string      `json:"title" validate:"required,min=3,max=200"`
	Description  string      `json:"description" validate:"max=5000"`
	Location     string      `json:"location" validate:"required,max=300"`
	Price        string      `json:"price" validate:"required"`
	Area         float64     `json:"area" validate:"gte=0"`
	Bedrooms     string      `json:"bedrooms" validate:"required,max=5"`
	Bathrooms    string      `json:"bathrooms" validate:"max=5"`
	Furnishing   string      `json:"furnishing" validate:"omitempty,oneof=furnished semi-furnished unfurnished"`
	PropertyType string      `json:"property_type" validate:"required,max=50"`
	Amenities    []string    `json:"amenities" validate:"dive,max=100"`
	Age          string      `json:"age" validate:"max=50"`
	Media        []MediaItem `json:"media" validate:"omitempty,dive"`
}

// ListingResponse decorates a listing with its display price and ordered
// media for direct rendering.
type ListingResponse struct {
	*models.Listing
	DisplayPrice string                 `json:"display_price"`
	Media        []*models.ListingMedia `json:"media,omitempty"`
}

type ListListingsResponse struct {
	Listings []*ListingResponse `json:"listings"`
	Total    int                `json:"total"`
}
