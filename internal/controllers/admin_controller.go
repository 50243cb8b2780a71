package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/services"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// AdminController backs the moderation dashboard: listing approval, lead
// follow-up and contact-form triage.
type AdminController struct {
	listingService services.ListingService
	leadService    services.LeadService
	inquiryService services.InquiryService
}

func NewAdminController(
	listingService services.ListingService,
	leadService services.LeadService,
	inquiryService services.InquiryService,
) *AdminController {
	return &AdminController{
		listingService: listingService,
		leadService:    leadService,
		inquiryService: inquiryService,
	}
}

// ----------------------------------------------------------------
// GET /api/v1/admin/listings?status=pending
// ----------------------------------------------------------------
func (c *AdminController) ListListingsHandler(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var (
		listings []*dtos.ListingResponse
		err      error
	)
	if status == "" {
		listings, err = c.listingService.ListAll(r.Context())
	} else {
		if !models.ValidListingStatus(models.ListingStatus(status)) {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Unknown listing status", nil)
			return
		}
		listings, err = c.listingService.ListByStatus(r.Context(), models.ListingStatus(status))
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list listings for admin")
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ListListingsResponse{
		Listings: listings,
		Total:    len(listings),
	})
}

// ----------------------------------------------------------------
// PATCH /api/v1/admin/listings/status
// ----------------------------------------------------------------
//
// Moderation transition: any status may move to any other.
func (c *AdminController) UpdateListingStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateListingStatusRequest
	if !c.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := uuid.Parse(req.ListingID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid listing_id format", nil, err)
		return
	}

	listing, svcErr := c.listingService.SetStatus(r.Context(), id, models.ListingStatus(req.Status))
	if svcErr != nil {
		utils.Logger.WithError(svcErr).Errorf("Failed to set status %s on listing %s", req.Status, id)
		utils.HandleAppError(w, svcErr)
		return
	}
	if listing == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Listing not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listing)
}

// ----------------------------------------------------------------
// GET /api/v1/admin/contact-requests?status=pending
// ----------------------------------------------------------------
func (c *AdminController) ListContactRequestsHandler(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.leadService.ListContactRequests(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list contact requests")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, contacts)
}

// ----------------------------------------------------------------
// PATCH /api/v1/admin/contact-requests/status
// ----------------------------------------------------------------
func (c *AdminController) UpdateContactRequestStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateContactRequestStatusRequest
	if !c.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id format", nil, err)
		return
	}

	if svcErr := c.leadService.UpdateContactRequestStatus(r.Context(), id, models.ContactRequestStatus(req.Status)); svcErr != nil {
		utils.Logger.WithError(svcErr).Errorf("Failed to update contact request %s", id)
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Contact request updated"})
}

// ----------------------------------------------------------------
// GET /api/v1/admin/appointments?status=pending
// ----------------------------------------------------------------
func (c *AdminController) ListAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	appointments, err := c.leadService.ListAppointments(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list appointments")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, appointments)
}

// ----------------------------------------------------------------
// PATCH /api/v1/admin/appointments/status
// ----------------------------------------------------------------
func (c *AdminController) UpdateAppointmentStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateAppointmentStatusRequest
	if !c.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id format", nil, err)
		return
	}

	appointment, svcErr := c.leadService.UpdateAppointmentStatus(r.Context(), id, models.AppointmentStatus(req.Status))
	if svcErr != nil {
		utils.Logger.WithError(svcErr).Errorf("Failed to update appointment %s", id)
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, appointment)
}

// ----------------------------------------------------------------
// GET /api/v1/admin/contact-submissions?status=new
// ----------------------------------------------------------------
func (c *AdminController) ListSubmissionsHandler(w http.ResponseWriter, r *http.Request) {
	submissions, err := c.inquiryService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list contact submissions")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, submissions)
}

// ----------------------------------------------------------------
// PATCH /api/v1/admin/contact-submissions/status
// ----------------------------------------------------------------
func (c *AdminController) UpdateSubmissionStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateSubmissionStatusRequest
	if !c.decodeAndValidate(w, r, &req) {
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id format", nil, err)
		return
	}

	if svcErr := c.inquiryService.UpdateStatus(r.Context(), id, models.SubmissionStatus(req.Status)); svcErr != nil {
		utils.Logger.WithError(svcErr).Errorf("Failed to update submission %s", id)
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Submission updated"})
}

func (c *AdminController) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return false
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return false
	}
	return true
}
