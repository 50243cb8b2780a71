package dtos

// Admin moderation requests. IDs travel in the body, matching the PATCH
// endpoints that act on a single row.

type UpdateListingStatusRequest struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,oneof=pending approved rejected sold_out"`
}

type UpdateContactRequestStatusRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required,oneof=pending contacted"`
}

type UpdateAppointmentStatusRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type UpdateSubmissionStatusRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required,oneof=new in_progress responded"`
}

type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
