package menu

import "context"

// Repository defines all database operations for price menus.
type Repository interface {

	// Get returns the tech's menu, or (nil, nil) when none is saved yet.
	Get(ctx context.Context, techID string) (*PriceMenu, error)

	// Save creates or replaces the tech's menu (one menu per tech).
	Save(ctx context.Context, techID string, m *PriceMenu) error
}
