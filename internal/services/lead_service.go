package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	twilio "github.com/twilio/twilio-go"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/repositories"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// LeadService captures listing-specific leads (contact requests and visit
// appointments) and drives their admin status transitions.
type LeadService interface {
	SubmitContactRequest(ctx context.Context, listingID, userID uuid.UUID, req dtos.ContactRequestCreate) (*models.ContactRequest, error)
	SubmitAppointment(ctx context.Context, listingID uuid.UUID, req dtos.AppointmentCreate) (*models.AppointmentRequest, error)

	ListContactRequests(ctx context.Context, status string) ([]*models.ContactRequest, error)
	UpdateContactRequestStatus(ctx context.Context, id uuid.UUID, status models.ContactRequestStatus) error

	ListAppointments(ctx context.Context, status string) ([]*models.AppointmentRequest, error)
	UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus) (*models.AppointmentRequest, error)
}

type leadService struct {
	listings     repositories.ListingRepository
	contacts     repositories.ContactRequestRepository
	appointments repositories.AppointmentRepository
	profiles     repositories.UserProfileRepository
	email        EmailService
	adminEmail   string

	// When set, phone numbers on incoming leads go through a Twilio
	// Lookups fetch on top of the E.164 syntax check.
	twilioClient  *twilio.RestClient
	validatePhone bool
}

func NewLeadService(
	listings repositories.ListingRepository,
	contacts repositories.ContactRequestRepository,
	appointments repositories.AppointmentRepository,
	profiles repositories.UserProfileRepository,
	email EmailService,
	adminEmail string,
	twilioClient *twilio.RestClient,
	validatePhone bool,
) LeadService {
	return &leadService{
		listings:     listings,
		contacts:     contacts,
		appointments: appointments,
		profiles:     profiles,
		email:        email,
		adminEmail:   adminEmail,

		twilioClient:  twilioClient,
		validatePhone: validatePhone,
	}
}

func (s *leadService) checkPhone(ctx context.Context, number string) error {
	if !s.validatePhone {
		return nil
	}
	ok, err := utils.ValidatePhoneNumber(ctx, number, true, s.twilioClient)
	if err != nil {
		return &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "Phone validation unavailable",
			Err:        err,
		}
	}
	if !ok {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Phone number could not be verified",
			Err:        utils.ErrInvalidPhone,
		}
	}
	return nil
}

func (s *leadService) SubmitContactRequest(ctx context.Context, listingID, userID uuid.UUID, req dtos.ContactRequestCreate) (*models.ContactRequest, error) {
	listing, err := s.mustGetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if req.UserPhone != nil {
		if err := s.checkPhone(ctx, *req.UserPhone); err != nil {
			return nil, err
		}
	}

	c := &models.ContactRequest{
		ID:               uuid.New(),
		ListingID:        listing.ID,
		PropertyCode:     PropertyCode(listing.ID),
		PropertyTitle:    listing.Title,
		PropertyLocation: listing.Location,
		UserID:           userID,
		UserName:         req.UserName,
		UserEmail:        req.UserEmail,
		UserPhone:        req.UserPhone,
		Status:           models.ContactRequestStatusPending,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}

	phone := ""
	if req.UserPhone != nil {
		phone = *req.UserPhone
	}

	// Keep the requester's profile current so the dashboard can show who
	// is behind each lead. Best effort only.
	if err := s.profiles.Upsert(ctx, &models.UserProfile{
		ID:       userID,
		FullName: req.UserName,
		Phone:    phone,
	}); err != nil {
		utils.Logger.WithError(err).Warnf("Could not upsert profile for user %s", userID)
	}

	s.email.SendAsync(EmailContactNotification, s.adminEmail, EmailData{
		"name":    req.UserName,
		"email":   req.UserEmail,
		"phone":   phone,
		"subject": fmt.Sprintf("Interest in %s (%s)", listing.Title, c.PropertyCode),
		"message": fmt.Sprintf("Contact request for %s, %s.", listing.Title, listing.Location),
	})

	return c, nil
}

func (s *leadService) SubmitAppointment(ctx context.Context, listingID uuid.UUID, req dtos.AppointmentCreate) (*models.AppointmentRequest, error) {
	listing, err := s.mustGetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Invalid preferred_date",
			Err:        err,
		}
	}

	a := &models.AppointmentRequest{
		ID:            uuid.New(),
		ListingID:     listing.ID,
		VisitorName:   req.VisitorName,
		VisitorEmail:  req.VisitorEmail,
		VisitorPhone:  req.VisitorPhone,
		PreferredDate: date,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		Status:        models.AppointmentStatusPending,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}

	msg := ""
	if req.Message != nil {
		msg = *req.Message
	}
	s.email.SendAsync(EmailAppointmentNotification, s.adminEmail, EmailData{
		"property_title": listing.Title,
		"visitor_name":   req.VisitorName,
		"visitor_email":  req.VisitorEmail,
		"visitor_phone":  req.VisitorPhone,
		"preferred_date": req.PreferredDate,
		"preferred_time": req.PreferredTime,
		"message":        msg,
	})

	return a, nil
}

func (s *leadService) ListContactRequests(ctx context.Context, status string) ([]*models.ContactRequest, error) {
	if status == "" {
		return s.contacts.List(ctx)
	}
	return s.contacts.ListByStatus(ctx, models.ContactRequestStatus(status))
}

func (s *leadService) UpdateContactRequestStatus(ctx context.Context, id uuid.UUID, status models.ContactRequestStatus) error {
	err := s.contacts.UpdateStatus(ctx, id, status)
	if err == utils.ErrNoRowsUpdated {
		return &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "Contact request not found",
			Err:        err,
		}
	}
	return err
}

func (s *leadService) ListAppointments(ctx context.Context, status string) ([]*models.AppointmentRequest, error) {
	if status == "" {
		return s.appointments.List(ctx)
	}
	return s.appointments.ListByStatus(ctx, models.AppointmentStatus(status))
}

func (s *leadService) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus) (*models.AppointmentRequest, error) {
	if !models.ValidAppointmentStatus(status) {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Unknown appointment status",
			Err:        utils.ErrInvalidStatus,
		}
	}

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "Appointment not found",
			Err:        utils.ErrAppointmentNotFound,
		}
	}

	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	a.Status = status

	listingTitle := ""
	if l, lerr := s.listings.GetByID(ctx, a.ListingID); lerr == nil && l != nil {
		listingTitle = l.Title
	}

	kind := EmailAppointmentStatusUpdate
	if status == models.AppointmentStatusConfirmed {
		kind = EmailAppointmentConfirmation
	}
	s.email.SendAsync(kind, a.VisitorEmail, EmailData{
		"property_title": listingTitle,
		"visitor_name":   a.VisitorName,
		"preferred_date": a.PreferredDate.Format("2006-01-02"),
		"preferred_time": a.PreferredTime,
		"status":         string(status),
	})

	return a, nil
}

func (s *leadService) mustGetListing(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "Listing not found",
			Err:        utils.ErrListingNotFound,
		}
	}
	return listing, nil
}

// PropertyCode derives the short human-facing reference shown in lead
// emails from the listing's UUID.
func PropertyCode(id uuid.UUID) string {
	return "PROP-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
