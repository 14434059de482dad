package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateName = errors.New("product name already registered")
	// ErrStockConflict means a conditional decrement found less stock than it needed.
	ErrStockConflict = errors.New("product stock changed concurrently")
)

// StockConflictError names the product whose conditional decrement failed.
type StockConflictError struct {
	ProductID uuid.UUID
	Decrement int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("%s: product %s cannot give %d units", ErrStockConflict, e.ProductID, e.Decrement)
}

func (e *StockConflictError) Is(target error) bool { return target == ErrStockConflict }

// Repository persists products.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// FindAllByID resolves the given ids; unknown ids are skipped, so the
	// result may be shorter than ids.
	FindAllByID(ctx context.Context, ids []uuid.UUID) ([]*domain.Product, error)
	// UpdateQuantities applies the batch atomically: each entry decrements stock
	// only if enough remains, otherwise nothing in the batch is applied and a
	// *StockConflictError is returned.
	UpdateQuantities(ctx context.Context, updates []domain.QuantityUpdate) error
}
