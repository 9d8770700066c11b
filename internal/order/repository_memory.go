package order

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	updatedAt time.Time
}

// InMemoryRepository keeps snapshots as JSON so callers never share state
// with the store.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]memoryEntry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]memoryEntry),
	}
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (*Order, error) {
	r.mu.RLock()
	e, ok := r.orders[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	var o Order
	if err := json.Unmarshal(e.data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *InMemoryRepository) Save(_ context.Context, o *Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.orders[o.ID] = memoryEntry{data: data, updatedAt: o.UpdatedAt}
	r.mu.Unlock()
	return nil
}

func (r *InMemoryRepository) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, e := range r.orders {
		if e.updatedAt.Before(cutoff) {
			delete(r.orders, id)
			n++
		}
	}
	return n, nil
}

func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
