package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("product name must not be empty")
	ErrInvalidPrice     = errors.New("product price must be between 0 and 999.99 with at most two decimals")
	ErrNegativeQuantity = errors.New("product quantity must not be negative")
)

// MaxPrice is the largest value the decimal(5,2) price column holds.
var MaxPrice = decimal.RequireFromString("999.99")

// Product is a sellable item with its on-hand quantity.
type Product struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuantityUpdate describes one inventory write produced by an order placement.
// Quantity is the remaining stock computed from the validated read; Decrement is
// what the order consumes and what adapters subtract conditionally.
type QuantityUpdate struct {
	ID        uuid.UUID
	Quantity  int
	Decrement int
}

// NewProduct validates and constructs a Product without an identifier.
func NewProduct(name string, price decimal.Decimal, quantity int) (*Product, error) {
	product := &Product{
		Name:     strings.TrimSpace(name),
		Price:    price,
		Quantity: quantity,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate enforces invariants on the product.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Price.IsNegative() || p.Price.GreaterThan(MaxPrice) || !p.Price.Equal(p.Price.Round(2)) {
		return ErrInvalidPrice
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Remaining returns the on-hand quantity left after taking requested units.
// A negative result means the request cannot be served.
func (p *Product) Remaining(requested int) int {
	return p.Quantity - requested
}
