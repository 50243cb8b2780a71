package models

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionStatus string

const (
	SubmissionStatusNew        SubmissionStatus = "new"
	SubmissionStatusInProgress SubmissionStatus = "in_progress"
	SubmissionStatusResponded  SubmissionStatus = "responded"
)

func ValidSubmissionStatus(s SubmissionStatus) bool {
	switch s {
	case SubmissionStatusNew, SubmissionStatusInProgress, SubmissionStatusResponded:
		return true
	}
	return false
}

// ContactSubmission is a general inquiry not tied to any listing.
type ContactSubmission struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Subject   string           `json:"subject"`
	Message   string           `json:"message"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
