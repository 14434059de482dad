package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
)

// Order is a committed purchase: one customer, one or more line items.
type Order struct {
	ID uuid.UUID
	// CustomerID is the foreign key. Placement clears it on the returned value
	// since Customer already carries the identity.
	CustomerID uuid.UUID
	Customer   *customerdomain.Customer
	Items      []LineItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LineItem is a product, quantity and the unit price captured at purchase time.
// UnitPrice never follows later product price changes.
type LineItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	UnitPrice decimal.Decimal
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total is UnitPrice * Quantity.
func (l LineItem) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums the line totals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Total())
	}
	return total
}

// Validate enforces invariants on an order about to be written.
func (o *Order) Validate() error {
	if o.CustomerID == uuid.Nil {
		return ErrCustomerRequired
	}
	if len(o.Items) == 0 {
		return ErrItemsRequired
	}
	seen := make(map[uuid.UUID]bool, len(o.Items))
	for _, item := range o.Items {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if seen[item.ProductID] {
			return ErrDuplicateProduct
		}
		seen[item.ProductID] = true
	}
	return nil
}

// Clone returns a deep copy so adapters never share item slices with callers.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	if o.Customer != nil {
		customer := *o.Customer
		clone.Customer = &customer
	}
	clone.Items = append([]LineItem(nil), o.Items...)
	return &clone
}
