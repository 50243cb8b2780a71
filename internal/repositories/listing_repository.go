package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type ListingRepository interface {
	Create(ctx context.Context, l *models.Listing) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)

	// ListVisible returns publicly browsable rows: approved, or sold_out
	// whose sold_out_date is after the cutoff (the grace window). Hidden
	// rows never appear.
	ListVisible(ctx context.Context, soldOutCutoff time.Time) ([]*models.Listing, error)
	ListByStatus(ctx context.Context, status models.ListingStatus) ([]*models.Listing, error)
	ListByPosterEmail(ctx context.Context, email string) ([]*models.Listing, error)
	ListAll(ctx context.Context) ([]*models.Listing, error)

	Update(ctx context.Context, l *models.Listing) error
	UpdateIfVersion(ctx context.Context, l *models.Listing, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Listing) error) error

	// HideExpiredSoldOut marks sold_out rows older than the cutoff as
	// hidden. Rows are never deleted; the grace window only ends their
	// public display.
	HideExpiredSoldOut(ctx context.Context, cutoff time.Time) (int64, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type listingRepo struct {
	*BaseVersionedRepo[*models.Listing]
	db DB
}

func NewListingRepository(db DB) ListingRepository {
	r := &listingRepo{db: db}
	selectStmt := baseSelectListing() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanListing)
	return r
}

func (r *listingRepo) Create(ctx context.Context, l *models.Listing) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO listings (
            id, title, description, location, price, area,
            bedrooms, bathrooms, furnishing, property_type, amenities, age,
            poster_name, poster_phone, poster_email,
            status, sold_out_date, hidden,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18, NOW(), NOW(), 1)
    `,
		l.ID,
		l.Title,
		l.Description,
		l.Location,
		l.Price,
		l.Area,
		l.Bedrooms,
		l.Bathrooms,
		l.Furnishing,
		l.PropertyType,
		l.Amenities,
		l.Age,
		l.PosterName,
		l.PosterPhone,
		l.PosterEmail,
		l.Status,
		l.SoldOutDate,
		l.Hidden,
	)
	return err
}

func (r *listingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *listingRepo) ListVisible(ctx context.Context, soldOutCutoff time.Time) ([]*models.Listing, error) {
	return r.list(ctx, baseSelectListing()+`
        WHERE hidden = FALSE
          AND (status = 'approved'
               OR (status = 'sold_out' AND sold_out_date > $1))
        ORDER BY created_at DESC`, soldOutCutoff)
}

func (r *listingRepo) ListByStatus(ctx context.Context, status models.ListingStatus) ([]*models.Listing, error) {
	return r.list(ctx, baseSelectListing()+" WHERE status=$1 ORDER BY created_at DESC", status)
}

func (r *listingRepo) ListByPosterEmail(ctx context.Context, email string) ([]*models.Listing, error) {
	return r.list(ctx, baseSelectListing()+" WHERE poster_email=$1 ORDER BY created_at DESC", email)
}

func (r *listingRepo) ListAll(ctx context.Context) ([]*models.Listing, error) {
	return r.list(ctx, baseSelectListing()+" ORDER BY created_at DESC")
}

func (r *listingRepo) Update(ctx context.Context, l *models.Listing) error {
	_, err := r.update(ctx, l, false, 0)
	return err
}

func (r *listingRepo) UpdateIfVersion(ctx context.Context, l *models.Listing, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, l, true, expected)
}

func (r *listingRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Listing) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *listingRepo) update(ctx context.Context, l *models.Listing, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE listings SET
            title=$1, description=$2, location=$3, price=$4, area=$5,
            bedrooms=$6, bathrooms=$7, furnishing=$8, property_type=$9,
            amenities=$10, age=$11,
            poster_name=$12, poster_phone=$13, poster_email=$14,
            status=$15, sold_out_date=$16, hidden=$17, updated_at=NOW()
    `
	args := []any{
		l.Title, l.Description, l.Location, l.Price, l.Area,
		l.Bedrooms, l.Bathrooms, l.Furnishing, l.PropertyType,
		l.Amenities, l.Age,
		l.PosterName, l.PosterPhone, l.PosterEmail,
		l.Status, l.SoldOutDate, l.Hidden,
	}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$18 AND row_version=$19`
		args = append(args, l.ID, expected)
	} else {
		sql += ` WHERE id=$18`
		args = append(args, l.ID)
	}

	return r.db.Exec(ctx, sql, args...)
}

func (r *listingRepo) HideExpiredSoldOut(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE listings SET hidden=TRUE, updated_at=NOW()
        WHERE status='sold_out' AND hidden=FALSE AND sold_out_date < $1
    `, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *listingRepo) list(ctx context.Context, sql string, args ...any) ([]*models.Listing, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func baseSelectListing() string {
	return `
        SELECT
            id, title, description, location, price, area,
            bedrooms, bathrooms, furnishing, property_type, amenities, age,
            poster_name, poster_phone, poster_email,
            status, sold_out_date, hidden,
            created_at, updated_at, row_version
        FROM listings
    `
}

func scanListing(row pgx.Row) (*models.Listing, error) {
	var l models.Listing
	var amenities pgtype.TextArray
	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Description,
		&l.Location,
		&l.Price,
		&l.Area,
		&l.Bedrooms,
		&l.Bathrooms,
		&l.Furnishing,
		&l.PropertyType,
		&amenities,
		&l.Age,
		&l.PosterName,
		&l.PosterPhone,
		&l.PosterEmail,
		&l.Status,
		&l.SoldOutDate,
		&l.Hidden,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := amenities.AssignTo(&l.Amenities); err != nil {
		return nil, err
	}
	return &l, nil
}
