package dtos

// ContactRequestCreate is the "I'm interested" form for a listing.
type ContactRequestCreate struct {
	UserName  string  `json:"user_name" validate:"required,max=100"`
	UserEmail string  `json:"user_email" validate:"required,email"`
	UserPhone *string `json:"user_phone" validate:"omitempty,e164"`
}

// AppointmentCreate books a site visit against a listing.
type AppointmentCreate struct {
	VisitorName   string  `json:"visitor_name" validate:"required,max=100"`
	VisitorEmail  string  `json:"visitor_email" validate:"required,email"`
	VisitorPhone  string  `json:"visitor_phone" validate:"required,max=20"`
	PreferredDate string  `json:"preferred_date" validate:"required,datetime=2006-01-02"`
	PreferredTime string  `json:"preferred_time" validate:"required,datetime=15:04"`
	Message       *string `json:"message" validate:"omitempty,max=2000"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
