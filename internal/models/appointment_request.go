package models

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled:
		return true
	}
	return false
}

// AppointmentRequest is a site-visit booking against a listing.
type AppointmentRequest struct {
	ID            uuid.UUID         `json:"id"`
	ListingID     uuid.UUID         `json:"property_id"`
	VisitorName   string            `json:"visitor_name"`
	VisitorEmail  string            `json:"visitor_email"`
	VisitorPhone  string            `json:"visitor_phone"`
	PreferredDate time.Time         `json:"preferred_date"`
	PreferredTime string            `json:"preferred_time"`
	Message       *string           `json:"message,omitempty"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
