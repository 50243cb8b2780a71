package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/pricing"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/repositories"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/search"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// SoldOutGraceWindow is how long a sold_out listing stays publicly visible
// (marked sold) before it drops off the browse pages. The row is never
// deleted.
const SoldOutGraceWindow = 30 * 24 * time.Hour

type ListingService interface {
	Create(ctx context.Context, req dtos.CreateListingRequest) (*models.Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*dtos.ListingResponse, error)
	ListVisible(ctx context.Context, f search.Filter) ([]*dtos.ListingResponse, error)
	ListByPoster(ctx context.Context, posterEmail string) ([]*dtos.ListingResponse, error)
	Update(ctx context.Context, id uuid.UUID, posterEmail string, req dtos.UpdateListingRequest) (*models.Listing, error)

	// Admin moderation
	ListByStatus(ctx context.Context, status models.ListingStatus) ([]*dtos.ListingResponse, error)
	ListAll(ctx context.Context) ([]*dtos.ListingResponse, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) (*models.Listing, error)

	// HideExpiredSoldOut ends the public display of sold_out listings past
	// the grace window. Invoked by the daily sweep.
	HideExpiredSoldOut(ctx context.Context) (int64, error)
}

type listingService struct {
	listings   repositories.ListingRepository
	media      repositories.ListingMediaRepository
	email      EmailService
	adminEmail string
	now        func() time.Time
}

func NewListingService(
	listings repositories.ListingRepository,
	media repositories.ListingMediaRepository,
	email EmailService,
	adminEmail string,
) ListingService {
	return &listingService{
		listings:   listings,
		media:      media,
		email:      email,
		adminEmail: adminEmail,
		now:        time.Now,
	}
}

func (s *listingService) Create(ctx context.Context, req dtos.CreateListingRequest) (*models.Listing, error) {
	price := pricing.ParseShorthand(req.Price)
	if price <= 0 {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Price could not be parsed",
		}
	}

	l := &models.Listing{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Price:        price,
		Area:         req.Area,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Furnishing:   req.Furnishing,
		PropertyType: req.PropertyType,
		Amenities:    req.Amenities,
		Age:          req.Age,
		PosterName:   req.PosterName,
		PosterPhone:  req.PosterPhone,
		PosterEmail:  req.PosterEmail,
		Status:       models.ListingStatusPending,
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}

	// Media rows go in only after the listing row committed; a failure here
	// leaves the listing in place (no rollback of the committed part).
	if err := s.media.CreateMany(ctx, mediaFromItems(l.ID, req.Media)); err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Listing saved but media could not be attached",
			Err:        err,
		}
	}

	s.email.SendAsync(EmailNewPropertyAdmin, s.adminEmail, EmailData{
		"property_title":    l.Title,
		"property_location": l.Location,
		"poster_name":       l.PosterName,
		"poster_email":      l.PosterEmail,
	})

	return l, nil
}

func (s *listingService) Get(ctx context.Context, id uuid.UUID) (*dtos.ListingResponse, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "Listing not found",
			Err:        utils.ErrListingNotFound,
		}
	}
	return s.toResponse(ctx, l)
}

func (s *listingService) ListVisible(ctx context.Context, f search.Filter) ([]*dtos.ListingResponse, error) {
	cutoff := s.now().Add(-SoldOutGraceWindow)
	listings, err := s.listings.ListVisible(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, search.Apply(listings, f))
}

func (s *listingService) ListByPoster(ctx context.Context, posterEmail string) ([]*dtos.ListingResponse, error) {
	listings, err := s.listings.ListByPosterEmail(ctx, posterEmail)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, listings)
}

func (s *listingService) Update(ctx context.Context, id uuid.UUID, posterEmail string, req dtos.UpdateListingRequest) (*models.Listing, error) {
	price := pricing.ParseShorthand(req.Price)
	if price <= 0 {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Price could not be parsed",
		}
	}

	existing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "Listing not found",
			Err:        utils.ErrListingNotFound,
		}
	}
	if !strings.EqualFold(existing.PosterEmail, posterEmail) {
		return nil, &utils.AppError{
			StatusCode: http.StatusForbidden,
			Code:       utils.ErrCodeForbidden,
			Message:    "Only the poster may edit this listing",
			Err:        utils.ErrNotListingOwner,
		}
	}

	err = s.listings.UpdateWithRetry(ctx, id, func(l *models.Listing) error {
		l.Title = req.Title
		l.Description = req.Description
		l.Location = req.Location
		l.Price = price
		l.Area = req.Area
		l.Bedrooms = req.Bedrooms
		l.Bathrooms = req.Bathrooms
		l.Furnishing = req.Furnishing
		l.PropertyType = req.PropertyType
		l.Amenities = req.Amenities
		l.Age = req.Age
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.Media != nil {
		if err := s.media.DeleteByListingID(ctx, id); err != nil {
			return nil, err
		}
		if err := s.media.CreateMany(ctx, mediaFromItems(id, req.Media)); err != nil {
			return nil, err
		}
	}

	return s.listings.GetByID(ctx, id)
}

func (s *listingService) ListByStatus(ctx context.Context, status models.ListingStatus) ([]*dtos.ListingResponse, error) {
	listings, err := s.listings.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, listings)
}

func (s *listingService) ListAll(ctx context.Context) ([]*dtos.ListingResponse, error) {
	listings, err := s.listings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, listings)
}

// SetStatus is the admin moderation transition. Any status is reachable
// from any other; sold_out stamps the date the grace window counts from.
func (s *listingService) SetStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) (*models.Listing, error) {
	if !models.ValidListingStatus(status) {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Unknown listing status",
			Err:        utils.ErrInvalidStatus,
		}
	}

	err := s.listings.UpdateWithRetry(ctx, id, func(l *models.Listing) error {
		l.Status = status
		switch status {
		case models.ListingStatusSoldOut:
			now := s.now()
			l.SoldOutDate = &now
		default:
			l.SoldOutDate = nil
			l.Hidden = false
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.listings.GetByID(ctx, id)
	if err != nil || updated == nil {
		return updated, err
	}

	switch status {
	case models.ListingStatusApproved:
		s.email.SendAsync(EmailPropertyApproval, updated.PosterEmail, EmailData{
			"property_title": updated.Title,
			"poster_name":    updated.PosterName,
		})
	case models.ListingStatusRejected:
		s.email.SendAsync(EmailPropertyRejection, updated.PosterEmail, EmailData{
			"property_title": updated.Title,
			"poster_name":    updated.PosterName,
		})
	}

	return updated, nil
}

func (s *listingService) HideExpiredSoldOut(ctx context.Context) (int64, error) {
	return s.listings.HideExpiredSoldOut(ctx, s.now().Add(-SoldOutGraceWindow))
}

// ------------------------------------------------------------------
// internals
// ------------------------------------------------------------------

func (s *listingService) toResponse(ctx context.Context, l *models.Listing) (*dtos.ListingResponse, error) {
	media, err := s.media.ListByListingID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return &dtos.ListingResponse{
		Listing:      l,
		DisplayPrice: pricing.DisplayPrice(l.Price),
		Media:        media,
	}, nil
}

func (s *listingService) toResponses(ctx context.Context, listings []*models.Listing) ([]*dtos.ListingResponse, error) {
	out := make([]*dtos.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp, err := s.toResponse(ctx, l)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func mediaFromItems(listingID uuid.UUID, items []dtos.MediaItem) []*models.ListingMedia {
	media := make([]*models.ListingMedia, 0, len(items))
	for _, item := range items {
		media = append(media, &models.ListingMedia{
			ID:           uuid.New(),
			ListingID:    listingID,
			URL:          item.URL,
			MediaType:    models.MediaType(item.MediaType),
			DisplayOrder: item.DisplayOrder,
		})
	}
	return media
}
