package domain

import (
	"github.com/google/uuid"

	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	productdomain "github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
)

// RequestedItem is one (product, quantity) pair of a placement request.
type RequestedItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// Placement is the validated write plan for one order: the order to create and
// the inventory updates to apply, built in lockstep.
type Placement struct {
	Order   *Order
	Updates []productdomain.QuantityUpdate
}

// ValidateRequest rejects requests that cannot describe an order, before any lookup.
func ValidateRequest(customerID uuid.UUID, items []RequestedItem) error {
	if customerID == uuid.Nil {
		return ErrCustomerRequired
	}
	if len(items) == 0 {
		return ErrItemsRequired
	}
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
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

// MissingProducts returns the requested ids absent from resolved, in request order.
func MissingProducts(items []RequestedItem, resolved []*productdomain.Product) []uuid.UUID {
	known := make(map[uuid.UUID]bool, len(resolved))
	for _, product := range resolved {
		known[product.ID] = true
	}
	var missing []uuid.UUID
	for _, item := range items {
		if !known[item.ProductID] {
			missing = append(missing, item.ProductID)
		}
	}
	return missing
}

// PlanPlacement checks stock for every requested item and snapshots each product's
// current price into the line items. The first item whose stock cannot cover the
// request fails the whole plan with *InsufficientInventoryError.
func PlanPlacement(customer *customerdomain.Customer, products []*productdomain.Product, items []RequestedItem) (*Placement, error) {
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	byID := make(map[uuid.UUID]*productdomain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	if missing := MissingProducts(items, products); len(missing) > 0 {
		return nil, &ProductNotFoundError{ProductIDs: missing}
	}

	order := &Order{
		CustomerID: customer.ID,
		Customer:   customer,
		Items:      make([]LineItem, 0, len(items)),
	}
	updates := make([]productdomain.QuantityUpdate, 0, len(items))
	for _, item := range items {
		product := byID[item.ProductID]
		remaining := product.Remaining(item.Quantity)
		if remaining < 0 {
			return nil, &InsufficientInventoryError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   item.Quantity,
				Available:   product.Quantity,
			}
		}
		order.Items = append(order.Items, LineItem{
			ProductID: product.ID,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})
		updates = append(updates, productdomain.QuantityUpdate{
			ID:        product.ID,
			Quantity:  remaining,
			Decrement: item.Quantity,
		})
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return &Placement{Order: order, Updates: updates}, nil
}
