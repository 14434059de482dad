package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	productdomain "github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
	productports "github.com/Apurer/go-gin-orders-api/internal/domains/products/ports"
)

// Service orchestrates the order placement use cases.
type Service struct {
	repo       ports.Repository
	customers  ports.CustomerLookup
	products   ports.ProductLookup
	inventory  ports.InventoryUpdater
	transactor ports.Transactor
}

// Option configures optional collaborators.
type Option func(*Service)

// WithTransactor runs the order write and the inventory write as one unit of work.
// Without it the writes are two independent commits.
func WithTransactor(t ports.Transactor) Option {
	return func(s *Service) {
		s.transactor = t
	}
}

// NewService wires the orders service with its collaborators.
func NewService(repo ports.Repository, customers ports.CustomerLookup, products ports.ProductLookup, inventory ports.InventoryUpdater, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		customers: customers,
		products:  products,
		inventory: inventory,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// PlaceOrder validates the request against customers and stock, then writes the
// order and decrements inventory. Every validation failure happens before any write.
func (s *Service) PlaceOrder(ctx context.Context, input types.PlaceOrderInput) (*domain.Order, error) {
	items := input.RequestedItems()
	if err := domain.ValidateRequest(input.CustomerID, items); err != nil {
		return nil, mapError(err)
	}

	customer, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, mapError(err)
	}
	products, err := s.products.FindAllByID(ctx, input.ProductIDs())
	if err != nil {
		return nil, mapError(err)
	}
	plan, err := domain.PlanPlacement(customer, products, items)
	if err != nil {
		return nil, mapError(err)
	}

	placed, err := s.write(ctx, plan)
	if err != nil {
		return nil, s.stockError(err, plan, products)
	}
	placed.CustomerID = uuid.Nil
	return placed, nil
}

// GetOrderByID loads an order with its customer and line items.
func (s *Service) GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (s *Service) write(ctx context.Context, plan *domain.Placement) (*domain.Order, error) {
	if s.transactor == nil {
		placed, err := s.repo.Create(ctx, plan.Order)
		if err != nil {
			return nil, err
		}
		if err := s.inventory.UpdateQuantities(ctx, plan.Updates); err != nil {
			return nil, fmt.Errorf("%w (order %s): %w", ErrInventoryNotApplied, placed.ID, err)
		}
		return placed, nil
	}
	var placed *domain.Order
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := s.repo.Create(ctx, plan.Order)
		if err != nil {
			return err
		}
		if err := s.inventory.UpdateQuantities(ctx, plan.Updates); err != nil {
			return err
		}
		placed = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// stockError turns a lost race on a conditional decrement into the same typed
// failure validation would have produced.
func (s *Service) stockError(err error, plan *domain.Placement, products []*productdomain.Product) error {
	var conflict *productports.StockConflictError
	if !errors.As(err, &conflict) || errors.Is(err, ErrInventoryNotApplied) {
		return err
	}
	insufficient := &domain.InsufficientInventoryError{ProductID: conflict.ProductID, Requested: conflict.Decrement}
	for _, product := range products {
		if product.ID == conflict.ProductID {
			insufficient.ProductName = product.Name
		}
	}
	for _, update := range plan.Updates {
		if update.ID == conflict.ProductID {
			insufficient.Available = update.Quantity + update.Decrement
		}
	}
	return insufficient
}

var _ ports.Service = (*Service)(nil)
