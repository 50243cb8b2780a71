package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/dtos"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/search"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

const testAdminEmail = "admin@example.com"

func newTestListingService(now time.Time) (*listingService, *fakeListingRepo, *fakeMediaRepo, *recordingEmail) {
	listings := newFakeListingRepo()
	media := newFakeMediaRepo()
	email := &recordingEmail{}
	svc := &listingService{
		listings:   listings,
		media:      media,
		email:      email,
		adminEmail: testAdminEmail,
		now:        func() time.Time { return now },
	}
	return svc, listings, media, email
}

func validCreateRequest() dtos.CreateListingRequest {
	return dtos.CreateListingRequest{
		Title:        "3BHK in Gachibowli",
		Description:  "Spacious flat near the financial district",
		Location:     "Gachibowli, Hyderabad",
		Price:        "1.2cr",
		Area:         1650,
		Bedrooms:     "3",
		Bathrooms:    "2",
		Furnishing:   "semi-furnished",
		PropertyType: "apartment",
		Amenities:    []string{"lift", "parking"},
		PosterName:   "Ravi",
		PosterPhone:  "+919876543210",
		PosterEmail:  "ravi@example.com",
		Media: []dtos.MediaItem{
			{URL: "https://cdn.example.com/a.jpg", MediaType: "image", DisplayOrder: 0},
			{URL: "https://cdn.example.com/b.jpg", MediaType: "image", DisplayOrder: 1},
		},
	}
}

func TestCreateListingParsesShorthandPrice(t *testing.T) {
	svc, _, media, email := newTestListingService(time.Now())

	l, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(12_000_000), l.Price)
	assert.Equal(t, models.ListingStatusPending, l.Status)
	assert.Nil(t, l.SoldOutDate)

	attached, _ := media.ListByListingID(context.Background(), l.ID)
	assert.Len(t, attached, 2)

	sent := email.all()
	require.Len(t, sent, 1)
	assert.Equal(t, EmailNewPropertyAdmin, sent[0].Kind)
	assert.Equal(t, testAdminEmail, sent[0].To)
}

func TestCreateListingRejectsUnparseablePrice(t *testing.T) {
	svc, _, _, _ := newTestListingService(time.Now())

	req := validCreateRequest()
	req.Price = "call for price"

	_, err := svc.Create(context.Background(), req)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestCreateListingMediaFailureKeepsListing(t *testing.T) {
	svc, listings, media, _ := newTestListingService(time.Now())
	media.fail = true

	_, err := svc.Create(context.Background(), validCreateRequest())
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)

	// The listing row itself survives the partial failure.
	all, _ := listings.ListAll(context.Background())
	assert.Len(t, all, 1)
}

func TestListVisibleAppliesGraceWindow(t *testing.T) {
	now := time.Now()
	svc, listings, _, _ := newTestListingService(now)

	recent := now.Add(-10 * 24 * time.Hour)
	stale := now.Add(-40 * 24 * time.Hour)

	seed := []*models.Listing{
		{ID: uuid.New(), Title: "approved", Status: models.ListingStatusApproved},
		{ID: uuid.New(), Title: "pending", Status: models.ListingStatusPending},
		{ID: uuid.New(), Title: "recently sold", Status: models.ListingStatusSoldOut, SoldOutDate: &recent},
		{ID: uuid.New(), Title: "long sold", Status: models.ListingStatusSoldOut, SoldOutDate: &stale},
	}
	for _, l := range seed {
		require.NoError(t, listings.Create(context.Background(), l))
	}

	visible, err := svc.ListVisible(context.Background(), search.Filter{})
	require.NoError(t, err)

	titles := make([]string, 0, len(visible))
	for _, l := range visible {
		titles = append(titles, l.Title)
	}
	assert.ElementsMatch(t, []string{"approved", "recently sold"}, titles)
}

func TestListVisibleAppliesFilter(t *testing.T) {
	now := time.Now()
	svc, listings, _, _ := newTestListingService(now)

	seed := []*models.Listing{
		{ID: uuid.New(), Title: "cheap 2bhk", Price: 5_000_000, Bedrooms: "2", Status: models.ListingStatusApproved},
		{ID: uuid.New(), Title: "big villa", Price: 40_000_000, Bedrooms: "5", Status: models.ListingStatusApproved},
	}
	for _, l := range seed {
		require.NoError(t, listings.Create(context.Background(), l))
	}

	visible, err := svc.ListVisible(context.Background(), search.Filter{MaxBudget: 10_000_000, BHK: "2"})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "cheap 2bhk", visible[0].Title)
	assert.Equal(t, "₹50.00 L", visible[0].DisplayPrice)
}

func TestUpdateListingOwnership(t *testing.T) {
	svc, _, _, _ := newTestListingService(time.Now())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	upd := dtos.UpdateListingRequest{
		Title:        "3BHK in Gachibowli (updated)",
		Location:     "Gachibowli, Hyderabad",
		Price:        "1.4cr",
		Bedrooms:     "3",
		PropertyType: "apartment",
	}

	_, err = svc.Update(context.Background(), created.ID, "someone-else@example.com", upd)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.StatusCode)

	// Poster email comparison is case-insensitive.
	updated, err := svc.Update(context.Background(), created.ID, "RAVI@example.com", upd)
	require.NoError(t, err)
	assert.Equal(t, int64(14_000_000), updated.Price)
	assert.Equal(t, "3BHK in Gachibowli (updated)", updated.Title)
}

func TestUpdateListingNotFound(t *testing.T) {
	svc, _, _, _ := newTestListingService(time.Now())

	_, err := svc.Update(context.Background(), uuid.New(), "ravi@example.com", dtos.UpdateListingRequest{
		Title: "x", Location: "y", Price: "50L", Bedrooms: "1", PropertyType: "plot",
	})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestSetStatusSoldOutStampsDate(t *testing.T) {
	now := time.Now()
	svc, _, _, _ := newTestListingService(now)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	sold, err := svc.SetStatus(context.Background(), created.ID, models.ListingStatusSoldOut)
	require.NoError(t, err)
	require.NotNil(t, sold.SoldOutDate)
	assert.WithinDuration(t, now, *sold.SoldOutDate, time.Second)

	// Moving back out of sold_out clears the stamp and any hiding.
	reopened, err := svc.SetStatus(context.Background(), created.ID, models.ListingStatusApproved)
	require.NoError(t, err)
	assert.Nil(t, reopened.SoldOutDate)
	assert.False(t, reopened.Hidden)
}

func TestSetStatusSendsModerationEmails(t *testing.T) {
	svc, _, _, email := newTestListingService(time.Now())

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), created.ID, models.ListingStatusApproved)
	require.NoError(t, err)
	_, err = svc.SetStatus(context.Background(), created.ID, models.ListingStatusRejected)
	require.NoError(t, err)

	sent := email.all()
	require.Len(t, sent, 3) // admin notification + approval + rejection
	assert.Equal(t, EmailPropertyApproval, sent[1].Kind)
	assert.Equal(t, "ravi@example.com", sent[1].To)
	assert.Equal(t, EmailPropertyRejection, sent[2].Kind)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _, _ := newTestListingService(time.Now())

	_, err := svc.SetStatus(context.Background(), uuid.New(), models.ListingStatus("archived"))
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestHideExpiredSoldOut(t *testing.T) {
	now := time.Now()
	svc, listings, _, _ := newTestListingService(now)

	recent := now.Add(-5 * 24 * time.Hour)
	stale := now.Add(-45 * 24 * time.Hour)
	seed := []*models.Listing{
		{ID: uuid.New(), Status: models.ListingStatusSoldOut, SoldOutDate: &recent},
		{ID: uuid.New(), Status: models.ListingStatusSoldOut, SoldOutDate: &stale},
		{ID: uuid.New(), Status: models.ListingStatusApproved},
	}
	for _, l := range seed {
		require.NoError(t, listings.Create(context.Background(), l))
	}

	n, err := svc.HideExpiredSoldOut(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// A second pass finds nothing left to hide.
	n, err = svc.HideExpiredSoldOut(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
