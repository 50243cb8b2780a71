package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/services"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

type ContactController struct {
	inquiryService services.InquiryService
}

func NewContactController(s services.InquiryService) *ContactController {
	return &ContactController{inquiryService: s}
}

// ----------------------------------------------------------------
// POST /api/v1/contact
// ----------------------------------------------------------------
func (c *ContactController) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ContactSubmissionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if _, err := c.inquiryService.Submit(r.Context(), req); err != nil {
		utils.Logger.WithError(err).Error("Failed to save contact submission")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.MessageResponse{
		Message: "Thanks for reaching out. We'll get back to you shortly.",
	})
}
