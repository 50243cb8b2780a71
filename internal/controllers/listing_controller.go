package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/pricing"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/search"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/services"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

type ListingController struct {
	listingService services.ListingService
}

func NewListingController(s services.ListingService) *ListingController {
	return &ListingController{listingService: s}
}

// ----------------------------------------------------------------
// GET /api/v1/listings
// ----------------------------------------------------------------
//
// Browse with optional filters. Budget bounds accept the same shorthand
// the posting form does ("50L", "1.2cr").
func (c *ListingController) ListHandler(w http.ResponseWriter, r *http.Request) {
	f := parseFilter(r)

	listings, err := c.listingService.ListVisible(r.Context(), f)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list listings")
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ListListingsResponse{
		Listings: listings,
		Total:    len(listings),
	})
}

// ----------------------------------------------------------------
// GET /api/v1/listings/{id}
// ----------------------------------------------------------------
func (c *ListingController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	listing, err := c.listingService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listing)
}

// ----------------------------------------------------------------
// POST /api/v1/listings
// ----------------------------------------------------------------
func (c *ListingController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	listing, err := c.listingService.Create(r.Context(), req)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create listing")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, listing)
}

// ----------------------------------------------------------------
// PUT /api/v1/listings/{id}
// ----------------------------------------------------------------
//
// Only the original poster (matched by token email) may edit.
func (c *ListingController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	email, err := getUserEmail(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	var req dtos.UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	listing, svcErr := c.listingService.Update(r.Context(), id, email, req)
	if svcErr != nil {
		utils.Logger.WithError(svcErr).Errorf("Failed to update listing %s", id)
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listing)
}

// ----------------------------------------------------------------
// GET /api/v1/my-listings
// ----------------------------------------------------------------
func (c *ListingController) MyListingsHandler(w http.ResponseWriter, r *http.Request) {
	email, err := getUserEmail(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	listings, svcErr := c.listingService.ListByPoster(r.Context(), email)
	if svcErr != nil {
		utils.Logger.WithError(svcErr).Error("Failed to list poster's listings")
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ListListingsResponse{
		Listings: listings,
		Total:    len(listings),
	})
}

func parseFilter(r *http.Request) search.Filter {
	q := r.URL.Query()
	f := search.Filter{
		SearchTerm:   q.Get("q"),
		Area:         q.Get("area"),
		BHK:          q.Get("bhk"),
		PropertyType: q.Get("property_type"),
		Furnishing:   q.Get("furnishing"),
	}
	if v := q.Get("min_budget"); v != "" {
		f.MinBudget = pricing.ParseShorthand(v)
	}
	if v := q.Get("max_budget"); v != "" {
		f.MaxBudget = pricing.ParseShorthand(v)
	}
	return f
}
