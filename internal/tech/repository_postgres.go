package tech

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create or replace profile (ONE PROFILE PER USER)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, p *Profile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO techs (id, user_id, business_name, city, instagram, bio, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET business_name = EXCLUDED.business_name,
		    city          = EXCLUDED.city,
		    instagram     = EXCLUDED.instagram,
		    bio           = EXCLUDED.bio
		RETURNING id, status, created_at
	`, p.ID, p.UserID, p.BusinessName, p.City, p.Instagram, p.Bio, p.Status).
		Scan(&p.ID, &p.Status, &p.CreatedAt)
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, business_name, city, instagram, bio, status, created_at
		FROM techs
		WHERE user_id = $1
	`, userID).Scan(
		&p.ID, &p.UserID, &p.BusinessName, &p.City,
		&p.Instagram, &p.Bio, &p.Status, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) ListPending(ctx context.Context) ([]*Profile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, business_name, city, instagram, bio, status, created_at
		FROM techs
		WHERE status = $1
		ORDER BY created_at
	`, StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.BusinessName, &p.City,
			&p.Instagram, &p.Bio, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

func (r *PostgresRepository) Approve(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE techs
		SET status = $1
		WHERE user_id = $2
	`, StatusApproved, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("tech not found")
	}
	return nil
}
