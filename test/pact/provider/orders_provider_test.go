//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/Apurer/go-gin-orders-api/test/pact"

	ordersserver "github.com/Apurer/go-gin-orders-api/go"
	customermemory "github.com/Apurer/go-gin-orders-api/internal/domains/customers/adapters/memory"
	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	ordermemory "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/observability"
	orderworkflows "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/workflows"
	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	productmemory "github.com/Apurer/go-gin-orders-api/internal/domains/products/adapters/memory"
	productdomain "github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
	platformmemory "github.com/Apurer/go-gin-orders-api/internal/platform/memory"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOrdersProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset()
			if setup {
				app.seedCatalog(t)
			}
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset()
			if setup {
				app.seedCatalog(t)
				app.seedOrder(t, pacttest.ExistingOrderID)
			}
			return nil, nil
		},
		pacttest.StateNoOrders: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset()
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset()
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	customers *customermemory.Repository
	products  *productmemory.Repository
	orders    *ordermemory.Repository
	server    *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	customers := customermemory.NewRepository()
	products := productmemory.NewRepository()
	orders := ordermemory.NewRepository()

	service := orderobs.New(orderapp.NewService(
		orders, customers, products, products,
		orderapp.WithTransactor(platformmemory.NewTransactor()),
	))
	workflows := orderworkflows.NewInlineOrderWorkflows(service)

	handlers := ordersserver.ApiHandleFunctions{
		OrderAPI: ordersserver.NewOrderAPI(service, workflows),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = ordersserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		customers: customers,
		products:  products,
		orders:    orders,
		server:    server,
	}
}

func (a *contractProviderApp) reset() {
	ctx := context.Background()
	for _, order := range a.orders.List(ctx) {
		a.orders.Delete(ctx, order.ID)
	}
	a.products.Delete(ctx, pacttest.ProductID)
	a.customers.Delete(ctx, pacttest.CustomerID)
}

func (a *contractProviderApp) seedCatalog(t testing.TB) {
	t.Helper()
	ctx := context.Background()

	customer, err := customerdomain.NewCustomer(pacttest.CustomerName, pacttest.CustomerEmail)
	require.NoError(t, err)
	customer.ID = pacttest.CustomerID
	_, err = a.customers.Save(ctx, customer)
	require.NoError(t, err)

	product, err := productdomain.NewProduct(pacttest.ProductName, decimal.RequireFromString(pacttest.ProductPrice), pacttest.ProductStock)
	require.NoError(t, err)
	product.ID = pacttest.ProductID
	_, err = a.products.Save(ctx, product)
	require.NoError(t, err)
}

func (a *contractProviderApp) seedOrder(t testing.TB, id uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	customer, err := a.customers.FindByID(ctx, pacttest.CustomerID)
	require.NoError(t, err)

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a.orders.Seed(ctx, &orderdomain.Order{
		ID:         id,
		CustomerID: pacttest.CustomerID,
		Customer:   customer,
		Items: []orderdomain.LineItem{{
			ID:        uuid.New(),
			OrderID:   id,
			ProductID: pacttest.ProductID,
			UnitPrice: decimal.RequireFromString(pacttest.ProductPrice),
			Quantity:  3,
			CreatedAt: now,
			UpdatedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	})
}
