package routes

const (
	// Health
	Health = "/health"

	// Public browse endpoints
	Listings     = "/api/v1/listings"
	ListingByID  = "/api/v1/listings/{id}"
	AreasSuggest = "/api/v1/areas/suggest"

	// Authenticated visitor endpoints
	MyListings          = "/api/v1/my-listings"
	ListingContact      = "/api/v1/listings/{id}/contact-requests"
	ListingAppointments = "/api/v1/listings/{id}/appointments"
	Contact             = "/api/v1/contact"
	Uploads             = "/api/v1/uploads"

	// Admin moderation endpoints
	AdminListings             = "/api/v1/admin/listings"
	AdminListingStatus        = "/api/v1/admin/listings/status"
	AdminContactRequests      = "/api/v1/admin/contact-requests"
	AdminContactRequestStatus = "/api/v1/admin/contact-requests/status"
	AdminAppointments         = "/api/v1/admin/appointments"
	AdminAppointmentStatus    = "/api/v1/admin/appointments/status"
	AdminSubmissions          = "/api/v1/admin/contact-submissions"
	AdminSubmissionStatus     = "/api/v1/admin/contact-submissions/status"
)
