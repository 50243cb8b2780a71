package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/repositories"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// InquiryService handles the general contact form.
type InquiryService interface {
	Submit(ctx context.Context, req dtos.ContactSubmissionCreate) (*models.ContactSubmission, error)
	List(ctx context.Context, status string) ([]*models.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SubmissionStatus) error
}

type inquiryService struct {
	submissions repositories.ContactSubmissionRepository
	email       EmailService
	adminEmail  string

	// When set, submissions run the deliverability check (MX + SendGrid
	// verdict) on top of the syntax validation the DTO already did.
	sendgridAPIKey       string
	validateWithSendGrid bool
}

func NewInquiryService(
	submissions repositories.ContactSubmissionRepository,
	email EmailService,
	adminEmail string,
	sendgridAPIKey string,
	validateWithSendGrid bool,
) InquiryService {
	return &inquiryService{
		submissions:          submissions,
		email:                email,
		adminEmail:           adminEmail,
		sendgridAPIKey:       sendgridAPIKey,
		validateWithSendGrid: validateWithSendGrid,
	}
}

func (s *inquiryService) Submit(ctx context.Context, req dtos.ContactSubmissionCreate) (*models.ContactSubmission, error) {
	if s.validateWithSendGrid {
		ok, err := utils.ValidateEmail(ctx, s.sendgridAPIKey, req.Email, true)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &utils.AppError{
				StatusCode: http.StatusBadRequest,
				Code:       utils.ErrCodeValidation,
				Message:    "Email address looks undeliverable",
				Err:        utils.ErrInvalidEmail,
			}
		}
	}

	sub := &models.ContactSubmission{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.SubmissionStatusNew,
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.email.SendAsync(EmailContactNotification, s.adminEmail, EmailData{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"subject": req.Subject,
		"message": req.Message,
	})

	return sub, nil
}

func (s *inquiryService) List(ctx context.Context, status string) ([]*models.ContactSubmission, error) {
	if status == "" {
		return s.submissions.List(ctx)
	}
	return s.submissions.ListByStatus(ctx, models.SubmissionStatus(status))
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SubmissionStatus) error {
	if !models.ValidSubmissionStatus(status) {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "Unknown submission status",
			Err:        utils.ErrInvalidStatus,
		}
	}

	err := s.submissions.UpdateStatus(ctx, id, status)
	if err == utils.ErrNoRowsUpdated {
		return &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "Submission not found",
			Err:        err,
		}
	}
	return err
}
