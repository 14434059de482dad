package bootstrap

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/application/types"
	productdomain "github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
)

func TestBuildOrders_FallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	orders := BuildOrders(ctx, "", nil)
	t.Cleanup(orders.Close)
	require.False(t, orders.Persistent)

	customer, err := customerdomain.NewCustomer("Ada Lovelace", "ada@example.com")
	require.NoError(t, err)
	customer, err = orders.Customers.Save(ctx, customer)
	require.NoError(t, err)
	product, err := productdomain.NewProduct("Widget", decimal.RequireFromString("10.00"), 5)
	require.NoError(t, err)
	product, err = orders.Products.Save(ctx, product)
	require.NoError(t, err)

	order, err := orders.Service.PlaceOrder(ctx, types.PlaceOrderInput{
		CustomerID: customer.ID,
		Items:      []types.PlaceOrderItem{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	stored, err := orders.Products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.Quantity)

	loaded, err := orders.Service.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
}
