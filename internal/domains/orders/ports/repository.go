package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrReferenceConflict means a referenced customer or product vanished between
	// validation and the write.
	ErrReferenceConflict = errors.New("order references a row that no longer exists")
)

// Repository persists the order aggregate.
type Repository interface {
	// Create writes the order and all of its line items atomically and returns
	// the stored aggregate with generated ids, timestamps and the customer loaded.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}
