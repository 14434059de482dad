package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

// PlaceOrderActivityName validates and writes one order with its inventory updates.
const PlaceOrderActivityName = "orders.activities.PlaceOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service ports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder runs the placement use case. Business failures come back as
// non-retryable application errors so the workflow never places twice.
func (a *Activities) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	logger := activity.GetLogger(ctx)
	customerID := input.CustomerID.String()
	if a == nil || a.service == nil {
		logger.Error("order placement activity not initialized", "customerId", customerID)
		return nil, errors.New("order placement activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "customerId", customerID, "items", len(input.Items))
	order, err := a.service.PlaceOrder(ctx, input)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "customerId", customerID, "error", err)
		return nil, EncodeError(err)
	}
	logger.Info("PlaceOrder activity completed", "orderId", order.ID.String())
	return order, nil
}

