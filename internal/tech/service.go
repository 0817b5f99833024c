package tech

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Save profile (new profiles start pending approval)
// --------------------------------------------------
func (s *Service) SaveProfile(
	ctx context.Context,
	userID string,
	businessName string,
	city string,
	instagram string,
	bio string,
) (*Profile, error) {

	if businessName == "" || city == "" {
		return nil, errors.New("missing required fields")
	}

	p := &Profile{
		UserID:       userID,
		BusinessName: businessName,
		City:         city,
		Instagram:    instagram,
		Bio:          bio,
		Status:       StatusPending,
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetMyProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetByUser(ctx, userID)
}

// --------------------------------------------------
// ADMIN APPROVAL
// --------------------------------------------------
func (s *Service) ListPending(ctx context.Context) ([]*Profile, error) {
	return s.repo.ListPending(ctx)
}

func (s *Service) Approve(ctx context.Context, userID string) error {
	return s.repo.Approve(ctx, userID)
}
