package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	twilio "github.com/twilio/twilio-go"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/config"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/repositories"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/services"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App wires the database pool, repositories and services together.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool

	ListingService services.ListingService
	LeadService    services.LeadService
	InquiryService services.InquiryService
	StorageService services.StorageService
	EmailService   services.EmailService
	SweepService   *services.SweepService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		dbPool, err = newDBPool(connCtx, cfg.DBUrl)
		if err == nil {
			utils.Logger.Infof("%s connected to DB on attempt %d", cfg.AppName, i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	listingRepo := repositories.NewListingRepository(dbPool)
	mediaRepo := repositories.NewListingMediaRepository(dbPool)
	contactRepo := repositories.NewContactRequestRepository(dbPool)
	appointmentRepo := repositories.NewAppointmentRepository(dbPool)
	submissionRepo := repositories.NewContactSubmissionRepository(dbPool)
	profileRepo := repositories.NewUserProfileRepository(dbPool)

	emailSvc := services.NewEmailService(cfg.SendgridAPIKey, cfg.OrganizationName, cfg.SendgridFromEmail)

	storageSvc, err := services.NewGCSStorageService(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	var twilioClient *twilio.RestClient
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	listingSvc := services.NewListingService(listingRepo, mediaRepo, emailSvc, cfg.AdminEmail)
	leadSvc := services.NewLeadService(
		listingRepo, contactRepo, appointmentRepo, profileRepo, emailSvc, cfg.AdminEmail,
		twilioClient, cfg.ValidatePhoneWithTwilio,
	)
	inquirySvc := services.NewInquiryService(
		submissionRepo, emailSvc, cfg.AdminEmail,
		cfg.SendgridAPIKey, cfg.ValidateEmailWithSendgrid,
	)
	sweepSvc := services.NewSweepService(listingSvc)

	return &App{
		Config:         cfg,
		DB:             dbPool,
		ListingService: listingSvc,
		LeadService:    leadSvc,
		InquiryService: inquirySvc,
		StorageService: storageSvc,
		EmailService:   emailSvc,
		SweepService:   sweepSvc,
	}, nil
}

func (a *App) Close() {
	if a.SweepService != nil {
		a.SweepService.Stop()
	}
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("DB connection closed.")
	}
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}
