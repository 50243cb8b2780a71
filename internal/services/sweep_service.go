package services

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// SweepService runs the daily soft-expiry pass: sold_out listings past the
// grace window stop being displayed. Nothing is ever deleted.
type SweepService struct {
	listings ListingService
	cron     *cron.Cron
}

func NewSweepService(listings ListingService) *SweepService {
	return &SweepService{listings: listings}
}

func (s *SweepService) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc("@daily", s.RunOnce); err != nil {
		return err
	}
	s.cron.Start()
	utils.Logger.Info("Sold-out expiry sweep scheduled (@daily)")
	return nil
}

func (s *SweepService) RunOnce() {
	n, err := s.listings.HideExpiredSoldOut(context.Background())
	if err != nil {
		utils.Logger.WithError(err).Error("Sold-out expiry sweep failed")
		return
	}
	if n > 0 {
		utils.Logger.Infof("Sold-out expiry sweep hid %d listing(s)", n)
	}
}

func (s *SweepService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
