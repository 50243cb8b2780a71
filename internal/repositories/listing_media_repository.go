package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
)

type ListingMediaRepository interface {
	Create(ctx context.Context, m *models.ListingMedia) error
	// CreateMany inserts rows one at a time in slice order. The caller
	// issues this only after the parent listing row committed.
	CreateMany(ctx context.Context, media []*models.ListingMedia) error
	ListByListingID(ctx context.Context, listingID uuid.UUID) ([]*models.ListingMedia, error)
	DeleteByListingID(ctx context.Context, listingID uuid.UUID) error
}

type listingMediaRepo struct {
	db DB
}

func NewListingMediaRepository(db DB) ListingMediaRepository {
	return &listingMediaRepo{db: db}
}

func (r *listingMediaRepo) Create(ctx context.Context, m *models.ListingMedia) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO listing_media (id, property_id, image_url, media_type, display_order, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, m.ID, m.ListingID, m.URL, m.MediaType, m.DisplayOrder)
	return err
}

func (r *listingMediaRepo) CreateMany(ctx context.Context, media []*models.ListingMedia) error {
	for _, m := range media {
		if err := r.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *listingMediaRepo) ListByListingID(ctx context.Context, listingID uuid.UUID) ([]*models.ListingMedia, error) {
	// display_order ties fall back to id so the order is at least stable
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, image_url, media_type, display_order, created_at
        FROM listing_media
        WHERE property_id=$1
        ORDER BY display_order, id
    `, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ListingMedia
	for rows.Next() {
		m, err := scanListingMedia(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *listingMediaRepo) DeleteByListingID(ctx context.Context, listingID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM listing_media WHERE property_id=$1`, listingID)
	return err
}

func scanListingMedia(row pgx.Row) (*models.ListingMedia, error) {
	var m models.ListingMedia
	err := row.Scan(
		&m.ID,
		&m.ListingID,
		&m.URL,
		&m.MediaType,
		&m.DisplayOrder,
		&m.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
