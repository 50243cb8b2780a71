package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/services"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

type LeadController struct {
	leadService services.LeadService
}

func NewLeadController(s services.LeadService) *LeadController {
	return &LeadController{leadService: s}
}

// ----------------------------------------------------------------
// POST /api/v1/listings/{id}/contact-requests
// ----------------------------------------------------------------
func (c *LeadController) SubmitContactRequestHandler(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathUUID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	userID, err := getUserID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.ContactRequestCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	contact, svcErr := c.leadService.SubmitContactRequest(r.Context(), listingID, userID, req)
	if svcErr != nil {
		utils.Logger.WithError(svcErr).Errorf("Failed to submit contact request for listing %s", listingID)
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, contact)
}

// ----------------------------------------------------------------
// POST /api/v1/listings/{id}/appointments
// ----------------------------------------------------------------
func (c *LeadController) SubmitAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathUUID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.AppointmentCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	appointment, svcErr := c.leadService.SubmitAppointment(r.Context(), listingID, req)
	if svcErr != nil {
		utils.Logger.WithError(svcErr).Errorf("Failed to submit appointment for listing %s", listingID)
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, appointment)
}
