package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderactivities "github.com/Apurer/go-gin-orders-api/internal/platform/temporal/activities/orders"
)

// RunOrderPlacementSequence executes the placement activity exactly once.
// Placement is not idempotent, so a failed attempt is surfaced instead of retried.
func RunOrderPlacementSequence(ctx workflow.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	logger := workflow.GetLogger(ctx)
	customerID := input.CustomerID.String()
	logger.Info("order placement sequence started", "customerId", customerID)
	placeOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}

	var order domain.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, placeOptions), orderactivities.PlaceOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order placement sequence failed", "customerId", customerID, "error", err)
		return nil, err
	}
	logger.Info("order placement sequence placed", "orderId", order.ID.String())
	return &order, nil
}
