package menu

import "context"

type InMemoryRepository struct {
	menus map[string]*PriceMenu
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		menus: make(map[string]*PriceMenu),
	}
}

func (r *InMemoryRepository) Get(_ context.Context, techID string) (*PriceMenu, error) {
	m, ok := r.menus[techID]
	if !ok {
		return nil, nil
	}
	return m, nil
}

func (r *InMemoryRepository) Save(_ context.Context, techID string, m *PriceMenu) error {
	r.menus[techID] = m
	return nil
}
