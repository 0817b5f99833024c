package menu

import (
	"context"
	"encoding/json"
	"errors"

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
// GET MENU (ONE MENU PER TECH)
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context, techID string) (*PriceMenu, error) {
	var doc []byte

	err := r.db.QueryRow(ctx, `
		SELECT menu_json
		FROM price_menus
		WHERE tech_id = $1
	`, techID).Scan(&doc)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var m PriceMenu
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, errors.New("corrupt menu document")
	}

	return &m, nil
}

// --------------------------------------------------
// SAVE MENU (UPSERT, ONE ROW PER TECH)
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, techID string, m *PriceMenu) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO price_menus (tech_id, menu_json, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (tech_id)
		DO UPDATE SET menu_json = $2, updated_at = now()
	`, techID, doc)

	return err
}
