package lens

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guhdnews/lacqr-sub000/internal/pricing"
	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create quote (QUOTE_UPLOADED)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, q *Quote) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO quotes (id, tech_id, image_url, status, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, q.ID, q.TechID, q.ImageURL, q.Status, q.Note).
		Scan(&q.CreatedAt, &q.UpdatedAt)
}

// --------------------------------------------------
// Fetch one quote (ownership enforced in the query)
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id, techID string) (*Quote, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, tech_id, image_url, status, note, degraded, error,
		       selection_json, price_json, created_at, updated_at
		FROM quotes
		WHERE id = $1 AND tech_id = $2
	`, id, techID)

	q, err := scanQuote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return q, err
}

func (r *PostgresRepository) ListByTech(ctx context.Context, techID string) ([]*Quote, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, tech_id, image_url, status, note, degraded, error,
		       selection_json, price_json, created_at, updated_at
		FROM quotes
		WHERE tech_id = $1
		ORDER BY created_at DESC
	`, techID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// --------------------------------------------------
// Claim next pending quote (atomic, worker-safe)
// --------------------------------------------------
func (r *PostgresRepository) ClaimPending(ctx context.Context) (*Quote, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var q Quote
	err = tx.QueryRow(ctx, `
		SELECT id, tech_id, image_url, COALESCE(note, '')
		FROM quotes
		WHERE status = $1
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, StatusUploaded).Scan(&q.ID, &q.TechID, &q.ImageURL, &q.Note)

	// No pending jobs is NOT an error
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE quotes
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, StatusAnalyzing, q.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	q.Status = StatusAnalyzing
	return &q, nil
}

// --------------------------------------------------
// Save analysis result (QUOTE_READY)
// --------------------------------------------------
func (r *PostgresRepository) SaveResult(ctx context.Context, q *Quote) error {
	selJSON, err := json.Marshal(q.Selection)
	if err != nil {
		return err
	}
	priceJSON, err := json.Marshal(q.Price)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		UPDATE quotes
		SET status = $1,
		    degraded = $2,
		    selection_json = $3,
		    price_json = $4,
		    error = NULL,
		    updated_at = now()
		WHERE id = $5
	`, StatusReady, q.Degraded, selJSON, priceJSON, q.ID)
	return err
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, id, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE quotes
		SET status = $1,
		    error = $2,
		    updated_at = now()
		WHERE id = $3
	`, StatusFailed, reason, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (*Quote, error) {
	var q Quote
	var note, errMsg *string
	var selJSON, priceJSON []byte

	if err := row.Scan(
		&q.ID, &q.TechID, &q.ImageURL, &q.Status, &note, &q.Degraded, &errMsg,
		&selJSON, &priceJSON, &q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if note != nil {
		q.Note = *note
	}
	if errMsg != nil {
		q.Error = *errMsg
	}
	if len(selJSON) > 0 {
		var sel quote.ServiceSelection
		if err := json.Unmarshal(selJSON, &sel); err != nil {
			return nil, err
		}
		q.Selection = &sel
	}
	if len(priceJSON) > 0 {
		var price pricing.PriceResult
		if err := json.Unmarshal(priceJSON, &price); err != nil {
			return nil, err
		}
		q.Price = &price
	}
	return &q, nil
}
