package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	ordersserver "github.com/Apurer/go-gin-orders-api/go"
	"github.com/Apurer/go-gin-orders-api/internal/app/bootstrap"
	"github.com/Apurer/go-gin-orders-api/internal/app/config"
	orderworkflows "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/workflows"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	platformobservability "github.com/Apurer/go-gin-orders-api/internal/platform/observability"
	platformtemporal "github.com/Apurer/go-gin-orders-api/internal/platform/temporal"
)

const serviceName = "orders-api"

// Run boots the orders HTTP API with observability, repositories, and workflows wired.
// It returns once ctx is cancelled and the server has drained.
func Run(ctx context.Context, cfg config.Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		LogLevel:     cfg.LogLevel,
		OTLPEndpoint: cfg.OTLPEndpoint,
		OTLPInsecure: cfg.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	orders := bootstrap.BuildOrders(ctx, cfg.PostgresDSN, instruments)
	defer orders.Close()

	inline := orderworkflows.NewInlineOrderWorkflows(orders.Service)
	var workflows orderports.WorkflowOrchestrator = inline
	temporalClient, err := platformtemporal.Dial(platformtemporal.DialOptions{
		Address:   cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Disabled:  cfg.TemporalDisabled,
		Component: "temporal-client",
	}, instruments)
	if err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		workflows = orderworkflows.NewTemporalOrderWorkflows(temporalClient,
			orderworkflows.WithTaskQueue(cfg.TaskQueue),
			orderworkflows.WithFallback(inline),
		)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace), slog.String("taskQueue", cfg.TaskQueue))
	}

	router := NewRouter(orders.Service, workflows)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("orders API listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("orders API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down orders API", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("orders API shutdown failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// NewRouter builds the gin engine serving the orders API.
func NewRouter(service orderports.Service, workflows orderports.WorkflowOrchestrator) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	return ordersserver.NewRouterWithGinEngine(router, ordersserver.ApiHandleFunctions{
		OrderAPI: ordersserver.NewOrderAPI(service, workflows),
	})
}
