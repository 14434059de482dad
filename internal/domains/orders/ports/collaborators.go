package ports

import (
	"context"

	"github.com/google/uuid"

	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	productdomain "github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
)

// CustomerLookup resolves a customer id. Missing customers surface as
// customers/ports.ErrNotFound.
type CustomerLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customerdomain.Customer, error)
}

// ProductLookup resolves product ids in one batch; unknown ids are left out.
type ProductLookup interface {
	FindAllByID(ctx context.Context, ids []uuid.UUID) ([]*productdomain.Product, error)
}

// InventoryUpdater applies a batch of stock updates atomically per call.
type InventoryUpdater interface {
	UpdateQuantities(ctx context.Context, updates []productdomain.QuantityUpdate) error
}

// Transactor scopes the order write and the inventory write to one unit of work.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
