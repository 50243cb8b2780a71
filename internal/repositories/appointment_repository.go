package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
	"github.com/NoBrainerCoder/realestate-website-sub000/internal/utils"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *models.AppointmentRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentRequest, error)
	List(ctx context.Context) ([]*models.AppointmentRequest, error)
	ListByStatus(ctx context.Context, status models.AppointmentStatus) ([]*models.AppointmentRequest, error)
	ListByListingID(ctx context.Context, listingID uuid.UUID) ([]*models.AppointmentRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus) error
}

type appointmentRepo struct {
	db DB
}

func NewAppointmentRepository(db DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, a *models.AppointmentRequest) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO appointment_requests (
            id, property_id, visitor_name, visitor_email, visitor_phone,
            preferred_date, preferred_time, message, status,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW())
    `,
		a.ID, a.ListingID, a.VisitorName, a.VisitorEmail, a.VisitorPhone,
		a.PreferredDate, a.PreferredTime, a.Message, a.Status,
	)
	return err
}

func (r *appointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentRequest, error) {
	row := r.db.QueryRow(ctx, baseSelectAppointment()+" WHERE id=$1", id)
	return scanAppointment(row)
}

func (r *appointmentRepo) List(ctx context.Context) ([]*models.AppointmentRequest, error) {
	return r.list(ctx, baseSelectAppointment()+" ORDER BY created_at DESC")
}

func (r *appointmentRepo) ListByStatus(ctx context.Context, status models.AppointmentStatus) ([]*models.AppointmentRequest, error) {
	return r.list(ctx, baseSelectAppointment()+" WHERE status=$1 ORDER BY created_at DESC", status)
}

func (r *appointmentRepo) ListByListingID(ctx context.Context, listingID uuid.UUID) ([]*models.AppointmentRequest, error) {
	return r.list(ctx, baseSelectAppointment()+" WHERE property_id=$1 ORDER BY created_at DESC", listingID)
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE appointment_requests SET status=$1, updated_at=NOW() WHERE id=$2
    `, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

func (r *appointmentRepo) list(ctx context.Context, sql string, args ...any) ([]*models.AppointmentRequest, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.AppointmentRequest
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func baseSelectAppointment() string {
	return `
        SELECT id, property_id, visitor_name, visitor_email, visitor_phone,
               preferred_date, preferred_time, message, status,
               created_at, updated_at
        FROM appointment_requests
    `
}

func scanAppointment(row pgx.Row) (*models.AppointmentRequest, error) {
	var a models.AppointmentRequest
	err := row.Scan(
		&a.ID,
		&a.ListingID,
		&a.VisitorName,
		&a.VisitorEmail,
		&a.VisitorPhone,
		&a.PreferredDate,
		&a.PreferredTime,
		&a.Message,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
