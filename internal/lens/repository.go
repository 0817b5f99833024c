package lens

import "context"

// Repository defines all database operations for quotes.
type Repository interface {

	// Create inserts a new quote record in QUOTE_UPLOADED state.
	Create(ctx context.Context, q *Quote) error

	// GetByID returns the quote, or (nil, nil) when it does not exist or
	// belongs to another tech.
	GetByID(ctx context.Context, id, techID string) (*Quote, error)

	// ListByTech returns the tech's quotes, newest first.
	ListByTech(ctx context.Context, techID string) ([]*Quote, error)

	// ClaimPending retrieves and CLAIMS the next quote awaiting analysis,
	// flipping it to ANALYZING atomically. Returns (nil, nil) when no jobs
	// are available (NOT an error).
	ClaimPending(ctx context.Context) (*Quote, error)

	// SaveResult stores the analysis outcome and moves the quote to
	// QUOTE_READY.
	SaveResult(ctx context.Context, q *Quote) error

	// MarkFailed records a hard failure with a reason.
	MarkFailed(ctx context.Context, id, reason string) error
}
