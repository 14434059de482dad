package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	platformmemory "github.com/Apurer/go-gin-orders-api/internal/platform/memory"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{orders: map[uuid.UUID]*domain.Order{}, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	stored := order.Clone()
	now := r.now()
	stored.ID = uuid.New()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	for i := range stored.Items {
		stored.Items[i].ID = uuid.New()
		stored.Items[i].OrderID = stored.ID
		stored.Items[i].CreatedAt = now
		stored.Items[i].UpdatedAt = now
	}

	r.mu.Lock()
	r.orders[stored.ID] = stored
	r.mu.Unlock()

	platformmemory.OnRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.orders, stored.ID)
	})
	return stored.Clone(), nil
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

// List returns every stored order. Used by tests and contract fixtures.
func (r *Repository) List(_ context.Context) []*domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, order.Clone())
	}
	return list
}

// Seed stores order as given, keeping its identifiers. Used to load contract fixtures.
func (r *Repository) Seed(_ context.Context, order *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order.Clone()
}

// Delete removes an order. Used to reset fixtures in contract tests.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
}
