package types

import (
	"github.com/google/uuid"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

// PlaceOrderItem requests Quantity units of ProductID.
type PlaceOrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// PlaceOrderInput is the order placement command.
type PlaceOrderInput struct {
	CustomerID uuid.UUID        `json:"customerId"`
	Items      []PlaceOrderItem `json:"items"`
}

// RequestedItems converts the command items into domain request items.
func (in PlaceOrderInput) RequestedItems() []domain.RequestedItem {
	items := make([]domain.RequestedItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, domain.RequestedItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return items
}

// ProductIDs returns the requested product ids in request order.
func (in PlaceOrderInput) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
