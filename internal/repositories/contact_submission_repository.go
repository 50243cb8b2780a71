package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

type ContactSubmissionRepository interface {
	Create(ctx context.Context, s *models.ContactSubmission) error
	List(ctx context.Context) ([]*models.ContactSubmission, error)
	ListByStatus(ctx context.Context, status models.SubmissionStatus) ([]*models.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SubmissionStatus) error
}

type contactSubmissionRepo struct {
	db DB
}

func NewContactSubmissionRepository(db DB) ContactSubmissionRepository {
	return &contactSubmissionRepo{db: db}
}

func (r *contactSubmissionRepo) Create(ctx context.Context, s *models.ContactSubmission) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO contact_submissions (
            id, name, email, phone, subject, message, status, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW())
    `, s.ID, s.Name, s.Email, s.Phone, s.Subject, s.Message, s.Status)
	return err
}

func (r *contactSubmissionRepo) List(ctx context.Context) ([]*models.ContactSubmission, error) {
	return r.list(ctx, baseSelectContactSubmission()+" ORDER BY created_at DESC")
}

func (r *contactSubmissionRepo) ListByStatus(ctx context.Context, status models.SubmissionStatus) ([]*models.ContactSubmission, error) {
	return r.list(ctx, baseSelectContactSubmission()+" WHERE status=$1 ORDER BY created_at DESC", status)
}

func (r *contactSubmissionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SubmissionStatus) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE contact_submissions SET status=$1, updated_at=NOW() WHERE id=$2
    `, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *contactSubmissionRepo) list(ctx context.Context, sql string, args ...any) ([]*models.ContactSubmission, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ContactSubmission
	for rows.Next() {
		s, err := scanContactSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func baseSelectContactSubmission() string {
	return `
        SELECT id, name, email, phone, subject, message, status, created_at, updated_at
        FROM contact_submissions
    `
}

func scanContactSubmission(row pgx.Row) (*models.ContactSubmission, error) {
	var s models.ContactSubmission
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.Phone,
		&s.Subject,
		&s.Message,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
