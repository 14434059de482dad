package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/products/ports"
	platformmemory "github.com/Apurer/go-gin-orders-api/internal/platform/memory"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*domain.Product
	now      func() time.Time
}

func NewRepository() *Repository {
	return &Repository{products: map[uuid.UUID]*domain.Product{}, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.products {
		if existing.Name == clone.Name && id != clone.ID {
			return nil, ports.ErrDuplicateName
		}
	}
	now := r.now()
	if clone.ID == uuid.Nil {
		clone.ID = uuid.New()
	}
	if existing, ok := r.products[clone.ID]; ok {
		clone.CreatedAt = existing.CreatedAt
	} else {
		clone.CreatedAt = now
	}
	clone.UpdatedAt = now
	r.products[clone.ID] = &clone
	saved := clone
	return &saved, nil
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) FindAllByID(_ context.Context, ids []uuid.UUID) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, ok := r.products[id]; ok {
			clone := *product
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (r *Repository) UpdateQuantities(ctx context.Context, updates []domain.QuantityUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range updates {
		product, ok := r.products[u.ID]
		if !ok || product.Quantity < u.Decrement {
			return &ports.StockConflictError{ProductID: u.ID, Decrement: u.Decrement}
		}
	}
	now := r.now()
	for _, u := range updates {
		product := r.products[u.ID]
		previous := *product
		product.Quantity -= u.Decrement
		product.UpdatedAt = now
		platformmemory.OnRollback(ctx, func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if current, ok := r.products[previous.ID]; ok {
				current.Quantity += u.Decrement
				current.UpdatedAt = previous.UpdatedAt
			}
		})
	}
	return nil
}

// Delete removes a product. Used to reset fixtures in contract tests.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
}
