package mapper

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

// OrderProductRequest is one requested product in a placement payload.
type OrderProductRequest struct {
	ID       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
}

// PlaceOrderRequest is the inbound payload for POST /orders.
type PlaceOrderRequest struct {
	CustomerID uuid.UUID             `json:"customer_id"`
	Products   []OrderProductRequest `json:"products"`
}

// Customer is the HTTP representation of the ordering customer.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderProduct is one line item of an order response.
type OrderProduct struct {
	ID        uuid.UUID  `json:"id"`
	ProductID *uuid.UUID `json:"product_id"`
	Price     string     `json:"price"`
	Quantity  int        `json:"quantity"`
	Total     string     `json:"total"`
}

// Order is the HTTP representation of a placed order. The customer foreign key
// is never serialised; Customer carries the identity.
type Order struct {
	ID            uuid.UUID      `json:"id"`
	Customer      *Customer      `json:"customer"`
	OrderProducts []OrderProduct `json:"order_products"`
	Total         string         `json:"total"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ToPlaceOrderInput maps the request payload into the application command.
func ToPlaceOrderInput(req PlaceOrderRequest) types.PlaceOrderInput {
	items := make([]types.PlaceOrderItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, types.PlaceOrderItem{ProductID: p.ID, Quantity: p.Quantity})
	}
	return types.PlaceOrderInput{CustomerID: req.CustomerID, Items: items}
}

// FromDomainOrder maps the order aggregate into its HTTP representation.
func FromDomainOrder(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	out := Order{
		ID:            order.ID,
		OrderProducts: make([]OrderProduct, 0, len(order.Items)),
		Total:         money(order.Total()),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if c := order.Customer; c != nil {
		out.Customer = &Customer{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}
	for _, item := range order.Items {
		line := OrderProduct{
			ID:       item.ID,
			Price:    money(item.UnitPrice),
			Quantity: item.Quantity,
			Total:    money(item.Total()),
		}
		if item.ProductID != uuid.Nil {
			productID := item.ProductID
			line.ProductID = &productID
		}
		out.OrderProducts = append(out.OrderProducts, line)
	}
	return out
}

// money renders amounts the way decimal(5,2) columns hold them.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
