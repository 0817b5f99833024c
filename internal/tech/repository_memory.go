package tech

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	profiles map[string]*Profile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		profiles: make(map[string]*Profile),
	}
}

func (r *InMemoryRepository) Upsert(_ context.Context, p *Profile) error {
	if existing, ok := r.profiles[p.UserID]; ok {
		p.ID = existing.ID
		p.Status = existing.Status
		p.CreatedAt = existing.CreatedAt
	} else {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		p.CreatedAt = time.Now()
	}
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByUser(_ context.Context, userID string) (*Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *InMemoryRepository) ListPending(_ context.Context) ([]*Profile, error) {
	var out []*Profile
	for _, p := range r.profiles {
		if p.Status == StatusPending {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Approve(_ context.Context, userID string) error {
	p, ok := r.profiles[userID]
	if !ok {
		return errors.New("tech not found")
	}
	p.Status = StatusApproved
	return nil
}
