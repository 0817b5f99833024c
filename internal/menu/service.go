package menu

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Get Menu (ONE MENU PER TECH, defaults until saved)
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, techID string) (*PriceMenu, error) {
	if techID == "" {
		return nil, fmt.Errorf("techID is required")
	}

	m, err := s.repo.Get(ctx, techID)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if m == nil {
		d := DefaultMenu()
		return &d, nil
	}
	return m, nil
}

// --------------------------------------------------
// Save Menu (FULL REPLACE)
// --------------------------------------------------
func (s *Service) Put(ctx context.Context, techID string, m *PriceMenu) error {
	if techID == "" {
		return fmt.Errorf("techID is required")
	}
	if m == nil {
		return fmt.Errorf("menu body is required")
	}

	if err := ValidateMenu(m); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, techID, m); err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	return nil
}
