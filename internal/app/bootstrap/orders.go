package bootstrap

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	customermemory "github.com/Apurer/go-gin-orders-api/internal/domains/customers/adapters/memory"
	customerpostgres "github.com/Apurer/go-gin-orders-api/internal/domains/customers/adapters/persistence/postgres"
	customerports "github.com/Apurer/go-gin-orders-api/internal/domains/customers/ports"
	ordermemory "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/persistence/postgres"
	orderapp "github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	productmemory "github.com/Apurer/go-gin-orders-api/internal/domains/products/adapters/memory"
	productpostgres "github.com/Apurer/go-gin-orders-api/internal/domains/products/adapters/persistence/postgres"
	productports "github.com/Apurer/go-gin-orders-api/internal/domains/products/ports"
	platformmemory "github.com/Apurer/go-gin-orders-api/internal/platform/memory"
	platformobservability "github.com/Apurer/go-gin-orders-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-orders-api/internal/platform/postgres"
)

const instrumentationName = "internal.orders.application"

// Orders is the wired orders bounded context with the repositories it reads from.
type Orders struct {
	Service   orderports.Service
	Customers customerports.Repository
	Products  productports.Repository
	// Persistent reports whether PostgreSQL backs the repositories.
	Persistent bool
	close      func()
}

// Close releases the database connection, if any.
func (o *Orders) Close() {
	if o != nil && o.close != nil {
		o.close()
	}
}

// BuildOrders wires PostgreSQL adapters when dsn dials, in-memory adapters otherwise.
// Either way the order and inventory writes share one unit of work.
func BuildOrders(ctx context.Context, dsn string, instruments *platformobservability.Instruments) *Orders {
	logger := slog.Default()
	if instruments != nil && instruments.Logger != nil {
		logger = instruments.Logger
	}
	db, cleanup := platformpostgres.ConnectOrFallback(ctx, dsn, logger)
	var orders *Orders
	if db != nil {
		orders = postgresOrders(db)
		logger.Info("order repositories configured with postgres")
	} else {
		orders = memoryOrders()
	}
	orders.close = cleanup
	orders.Service = orderobs.New(
		orders.Service,
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer(instrumentationName)),
		orderobs.WithMeter(instruments.Meter(instrumentationName)),
	)
	return orders
}

func postgresOrders(db *gorm.DB) *Orders {
	customers := customerpostgres.NewRepository(db)
	products := productpostgres.NewRepository(db)
	service := orderapp.NewService(
		orderpostgres.NewRepository(db),
		customers,
		products,
		products,
		orderapp.WithTransactor(platformpostgres.NewTransactor(db)),
	)
	return &Orders{Service: service, Customers: customers, Products: products, Persistent: true}
}

func memoryOrders() *Orders {
	customers := customermemory.NewRepository()
	products := productmemory.NewRepository()
	service := orderapp.NewService(
		ordermemory.NewRepository(),
		customers,
		products,
		products,
		orderapp.WithTransactor(platformmemory.NewTransactor()),
	)
	return &Orders{Service: service, Customers: customers, Products: products}
}
