package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
)

type UserProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	Upsert(ctx context.Context, p *models.UserProfile) error
}

type userProfileRepo struct {
	db DB
}

func NewUserProfileRepository(db DB) UserProfileRepository {
	return &userProfileRepo{db: db}
}

func (r *userProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	row := r.db.QueryRow(ctx, `
        SELECT id, full_name, phone, is_admin, created_at, updated_at
        FROM user_profiles WHERE id=$1
    `, id)

	var p models.UserProfile
	err := row.Scan(&p.ID, &p.FullName, &p.Phone, &p.IsAdmin, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *userProfileRepo) Upsert(ctx context.Context, p *models.UserProfile) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO user_profiles (id, full_name, phone, is_admin, created_at, updated_at)
        VALUES ($1,$2,$3,$4, NOW(), NOW())
        ON CONFLICT (id) DO UPDATE SET
            full_name=EXCLUDED.full_name,
            phone=EXCLUDED.phone,
            updated_at=NOW()
    `, p.ID, p.FullName, p.Phone, p.IsAdmin)
	return err
}
