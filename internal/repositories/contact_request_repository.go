package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

type ContactRequestRepository interface {
	Create(ctx context.Context, c *models.ContactRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ContactRequest, error)
	List(ctx context.Context) ([]*models.ContactRequest, error)
	ListByStatus(ctx context.Context, status models.ContactRequestStatus) ([]*models.ContactRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContactRequestStatus) error
}

type contactRequestRepo struct {
	db DB
}

func NewContactRequestRepository(db DB) ContactRequestRepository {
	return &contactRequestRepo{db: db}
}

func (r *contactRequestRepo) Create(ctx context.Context, c *models.ContactRequest) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO contact_requests (
            id, property_id, property_code, property_title, property_location,
            user_id, user_name, user_email, user_phone, status,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, NOW(), NOW())
    `,
		c.ID, c.ListingID, c.PropertyCode, c.PropertyTitle, c.PropertyLocation,
		c.UserID, c.UserName, c.UserEmail, c.UserPhone, c.Status,
	)
	return err
}

func (r *contactRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ContactRequest, error) {
	row := r.db.QueryRow(ctx, baseSelectContactRequest()+" WHERE id=$1", id)
	return scanContactRequest(row)
}

func (r *contactRequestRepo) List(ctx context.Context) ([]*models.ContactRequest, error) {
	return r.list(ctx, baseSelectContactRequest()+" ORDER BY created_at DESC")
}

func (r *contactRequestRepo) ListByStatus(ctx context.Context, status models.ContactRequestStatus) ([]*models.ContactRequest, error) {
	return r.list(ctx, baseSelectContactRequest()+" WHERE status=$1 ORDER BY created_at DESC", status)
}

func (r *contactRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContactRequestStatus) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE contact_requests SET status=$1, updated_at=NOW() WHERE id=$2
    `, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *contactRequestRepo) list(ctx context.Context, sql string, args ...any) ([]*models.ContactRequest, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ContactRequest
	for rows.Next() {
		c, err := scanContactRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func baseSelectContactRequest() string {
	return `
        SELECT id, property_id, property_code, property_title, property_location,
               user_id, user_name, user_email, user_phone, status,
               created_at, updated_at
        FROM contact_requests
    `
}

func scanContactRequest(row pgx.Row) (*models.ContactRequest, error) {
	var c models.ContactRequest
	err := row.Scan(
		&c.ID,
		&c.ListingID,
		&c.PropertyCode,
		&c.PropertyTitle,
		&c.PropertyLocation,
		&c.UserID,
		&c.UserName,
		&c.UserEmail,
		&c.UserPhone,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
