package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-gin-orders-api/internal/domains/orders/adapters/observability/service"

// Service decorates the orders application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// PlaceOrder places an order with instrumentation.
func (s *Service) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "OrderService.PlaceOrder",
		attribute.String("customer.id", input.CustomerID.String()),
		attribute.Int("order.items.requested", len(input.Items)),
	)
	defer span.End()

	s.logInfo(ctx, "placing order", slog.String("customer.id", input.CustomerID.String()), slog.Int("items", len(input.Items)))
	order, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		reason := rejectionReason(err)
		span.SetAttributes(attribute.String("order.rejection", reason))
		s.metrics.recordRejected(ctx, reason)
		if reason != reasonInternal {
			s.logWarn(ctx, "order rejected", slog.String("reason", reason), slog.String("error", err.Error()))
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "failed to place order", slog.String("customer.id", input.CustomerID.String()))
	}
	span.SetAttributes(attribute.String("order.id", order.ID.String()))
	s.metrics.recordPlaced(ctx, order)
	s.logInfo(ctx, "order placed",
		slog.String("order.id", order.ID.String()),
		slog.Int("items", len(order.Items)),
		slog.String("total", order.Total().StringFixed(2)),
	)
	return order, nil
}

// GetOrderByID loads a single order.
func (s *Service) GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	ctx, span := s.startSpan(ctx, "OrderService.GetOrderByID", attribute.String("order.id", id.String()))
	defer span.End()

	order, err := s.inner.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id.String()))
	}
	return order, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logWarn(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const (
	reasonInvalidInput      = "invalid_input"
	reasonCustomerNotFound  = "customer_not_found"
	reasonProductNotFound   = "product_not_found"
	reasonInsufficientStock = "insufficient_inventory"
	reasonReferenceConflict = "reference_conflict"
	reasonInternal          = "internal"
)

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		return reasonInvalidInput
	case errors.Is(err, domain.ErrCustomerNotFound):
		return reasonCustomerNotFound
	case errors.Is(err, domain.ErrProductNotFound):
		return reasonProductNotFound
	case errors.Is(err, domain.ErrInsufficientInventory):
		return reasonInsufficientStock
	case errors.Is(err, ports.ErrReferenceConflict):
		return reasonReferenceConflict
	default:
		return reasonInternal
	}
}

type serviceMetrics struct {
	ordersPlaced     metric.Int64Counter
	lineItemsPlaced  metric.Int64Counter
	placementsFailed metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("orders.service.orders_placed", metric.WithDescription("Number of orders placed"))
	lineItemsPlaced, _ := m.Int64Counter("orders.service.line_items_placed", metric.WithDescription("Number of order line items written"))
	placementsFailed, _ := m.Int64Counter("orders.service.placements_rejected", metric.WithDescription("Number of order placements rejected, by reason"))
	return serviceMetrics{
		ordersPlaced:     ordersPlaced,
		lineItemsPlaced:  lineItemsPlaced,
		placementsFailed: placementsFailed,
	}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, order *domain.Order) {
	addCounter(ctx, m.ordersPlaced, 1)
	addCounter(ctx, m.lineItemsPlaced, int64(len(order.Items)))
}

func (m serviceMetrics) recordRejected(ctx context.Context, reason string) {
	addCounter(ctx, m.placementsFailed, 1, attribute.String("reason", reason))
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
