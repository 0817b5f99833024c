package lens

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository backs tests. The mutex matters because the worker
// claims jobs from a separate goroutine.
type InMemoryRepository struct {
	mu     sync.Mutex
	quotes map[string]*Quote
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		quotes: make(map[string]*Quote),
	}
}

func (r *InMemoryRepository) Create(_ context.Context, q *Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	cp := *q
	r.quotes[q.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id, techID string) (*Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.quotes[id]
	if !ok || q.TechID != techID {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *InMemoryRepository) ListByTech(_ context.Context, techID string) ([]*Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Quote
	for _, q := range r.quotes {
		if q.TechID == techID {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) ClaimPending(_ context.Context) (*Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var oldest *Quote
	for _, q := range r.quotes {
		if q.Status != StatusUploaded {
			continue
		}
		if oldest == nil || q.CreatedAt.Before(oldest.CreatedAt) {
			oldest = q
		}
	}
	if oldest == nil {
		return nil, nil
	}

	oldest.Status = StatusAnalyzing
	oldest.UpdatedAt = time.Now()
	cp := *oldest
	return &cp, nil
}

func (r *InMemoryRepository) SaveResult(_ context.Context, q *Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.quotes[q.ID]
	if !ok {
		return nil
	}
	stored.Status = StatusReady
	stored.Degraded = q.Degraded
	stored.Selection = q.Selection
	stored.Price = q.Price
	stored.Error = ""
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) MarkFailed(_ context.Context, id, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.quotes[id]
	if !ok {
		return nil
	}
	stored.Status = StatusFailed
	stored.Error = reason
	stored.UpdatedAt = time.Now()
	return nil
}
