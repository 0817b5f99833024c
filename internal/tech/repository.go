package tech

import "context"

type Repository interface {
	// Upsert creates the profile on first save and replaces it after.
	Upsert(ctx context.Context, p *Profile) error

	// GetByUser returns the user's profile, or (nil, nil) when none exists.
	GetByUser(ctx context.Context, userID string) (*Profile, error)

	// admin surface
	ListPending(ctx context.Context) ([]*Profile, error)
	Approve(ctx context.Context, userID string) error
}
