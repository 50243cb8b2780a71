package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

// In-memory repository fakes. They mirror the SQL implementations' observable
// behavior (visibility rules, ordering, not-found semantics) so service tests
// run without a database.

type fakeListingRepo struct {
	mu       sync.Mutex
	listings map[uuid.UUID]*models.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[uuid.UUID]*models.Listing{}}
}

func (r *fakeListingRepo) Create(_ context.Context, l *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) ListVisible(_ context.Context, soldOutCutoff time.Time) ([]*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Listing
	for _, l := range r.listings {
		if l.Hidden {
			continue
		}
		switch l.Status {
		case models.ListingStatusApproved:
			out = append(out, l)
		case models.ListingStatusSoldOut:
			if l.SoldOutDate != nil && l.SoldOutDate.After(soldOutCutoff) {
				out = append(out, l)
			}
		}
	}
	sortListings(out)
	return out, nil
}

func (r *fakeListingRepo) ListByStatus(_ context.Context, status models.ListingStatus) ([]*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Listing
	for _, l := range r.listings {
		if l.Status == status {
			out = append(out, l)
		}
	}
	sortListings(out)
	return out, nil
}

func (r *fakeListingRepo) ListByPosterEmail(_ context.Context, email string) ([]*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Listing
	for _, l := range r.listings {
		if l.PosterEmail == email {
			out = append(out, l)
		}
	}
	sortListings(out)
	return out, nil
}

func (r *fakeListingRepo) ListAll(_ context.Context) ([]*models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Listing
	for _, l := range r.listings {
		out = append(out, l)
	}
	sortListings(out)
	return out, nil
}

func (r *fakeListingRepo) Update(_ context.Context, l *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[l.ID]; !ok {
		return utils.ErrNoRowsUpdated
	}
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) UpdateIfVersion(ctx context.Context, l *models.Listing, _ int64) (pgconn.CommandTag, error) {
	if err := r.Update(ctx, l); err != nil {
		return pgconn.CommandTag("UPDATE 0"), err
	}
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (r *fakeListingRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Listing) error) error {
	l, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return utils.ErrNoRowsUpdated
	}
	if err := mutate(l); err != nil {
		return err
	}
	return r.Update(ctx, l)
}

func (r *fakeListingRepo) HideExpiredSoldOut(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.listings {
		if l.Hidden || l.Status != models.ListingStatusSoldOut || l.SoldOutDate == nil {
			continue
		}
		if !l.SoldOutDate.After(cutoff) {
			l.Hidden = true
			n++
		}
	}
	return n, nil
}

func sortListings(ls []*models.Listing) {
	sort.Slice(ls, func(i, j int) bool { return ls[i].ID.String() < ls[j].ID.String() })
}

type fakeMediaRepo struct {
	mu    sync.Mutex
	media map[uuid.UUID][]*models.ListingMedia
	fail  bool
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{media: map[uuid.UUID][]*models.ListingMedia{}}
}

func (r *fakeMediaRepo) Create(_ context.Context, m *models.ListingMedia) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.media[m.ListingID] = append(r.media[m.ListingID], m)
	return nil
}

func (r *fakeMediaRepo) CreateMany(ctx context.Context, media []*models.ListingMedia) error {
	if r.fail {
		return utils.ErrNoRowsUpdated
	}
	for _, m := range media {
		if err := r.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeMediaRepo) ListByListingID(_ context.Context, listingID uuid.UUID) ([]*models.ListingMedia, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]*models.ListingMedia{}, r.media[listingID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *fakeMediaRepo) DeleteByListingID(_ context.Context, listingID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.media, listingID)
	return nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts map[uuid.UUID]*models.ContactRequest
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[uuid.UUID]*models.ContactRequest{}}
}

func (r *fakeContactRepo) Create(_ context.Context, c *models.ContactRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts[c.ID] = c
	return nil
}

func (r *fakeContactRepo) GetByID(_ context.Context, id uuid.UUID) (*models.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contacts[id], nil
}

func (r *fakeContactRepo) List(_ context.Context) ([]*models.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.ContactRequest
	for _, c := range r.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeContactRepo) ListByStatus(_ context.Context, status models.ContactRequestStatus) ([]*models.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.ContactRequest
	for _, c := range r.contacts {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.ContactRequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contacts[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	c.Status = status
	return nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[uuid.UUID]*models.AppointmentRequest
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[uuid.UUID]*models.AppointmentRequest{}}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *models.AppointmentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[a.ID] = a
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.AppointmentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appointments[id], nil
}

func (r *fakeAppointmentRepo) List(_ context.Context) ([]*models.AppointmentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.AppointmentRequest
	for _, a := range r.appointments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByStatus(_ context.Context, status models.AppointmentStatus) ([]*models.AppointmentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.AppointmentRequest
	for _, a := range r.appointments {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByListingID(_ context.Context, listingID uuid.UUID) ([]*models.AppointmentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.AppointmentRequest
	for _, a := range r.appointments {
		if a.ListingID == listingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appointments[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	a.Status = status
	return nil
}

type fakeSubmissionRepo struct {
	mu          sync.Mutex
	submissions map[uuid.UUID]*models.ContactSubmission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{submissions: map[uuid.UUID]*models.ContactSubmission{}}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *models.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions[s.ID] = s
	return nil
}

func (r *fakeSubmissionRepo) List(_ context.Context) ([]*models.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.ContactSubmission
	for _, s := range r.submissions {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) ListByStatus(_ context.Context, status models.SubmissionStatus) ([]*models.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.ContactSubmission
	for _, s := range r.submissions {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.SubmissionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.submissions[id]
	if !ok {
		return utils.ErrNoRowsUpdated
	}
	s.Status = status
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*models.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*models.UserProfile{}}
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profiles[id], nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

// recordingEmail captures outbound mail synchronously so tests can assert
// on it without racing the async sender.
type sentEmail struct {
	Kind EmailKind
	To   string
	Data EmailData
}

type recordingEmail struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (e *recordingEmail) Send(_ context.Context, kind EmailKind, to string, data EmailData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sent = append(e.sent, sentEmail{Kind: kind, To: to, Data: data})
	return nil
}

func (e *recordingEmail) SendAsync(kind EmailKind, to string, data EmailData) {
	_ = e.Send(context.Background(), kind, to, data)
}

func (e *recordingEmail) all() []sentEmail {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]sentEmail{}, e.sent...)
}
