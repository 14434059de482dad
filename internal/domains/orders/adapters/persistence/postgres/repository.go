package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	platformpostgres "github.com/Apurer/go-gin-orders-api/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders and their line items in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type orderRecord struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;column:id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;column:customer_id"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type lineItemRecord struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;column:id"`
	ProductID *uuid.UUID      `gorm:"type:uuid;column:product_id"`
	OrderID   *uuid.UUID      `gorm:"type:uuid;column:order_id"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(5,2)"`
	Quantity  int             `gorm:"column:quantity"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (lineItemRecord) TableName() string { return "orders_products" }

type customerRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (customerRecord) TableName() string { return "customers" }

// Create inserts the order row and one orders_products row per line item in a
// single transaction, joining the caller's transaction when ctx carries one.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	record := orderRecord{ID: uuid.New(), CustomerID: nullable(order.CustomerID)}
	items := make([]lineItemRecord, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, lineItemRecord{
			ID:        uuid.New(),
			ProductID: nullable(item.ProductID),
			OrderID:   &record.ID,
			Price:     item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	conn := platformpostgres.Conn(ctx, r.db)
	err := conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, mapWriteError(err)
	}
	return r.load(conn, record)
}

// mapWriteError names the violated constraint so callers can tell a vanished
// customer from a vanished product.
func mapWriteError(err error) error {
	if !platformpostgres.IsForeignKeyViolation(err) {
		return err
	}
	if name := platformpostgres.ConstraintName(err); name != "" {
		return fmt.Errorf("%w (%s)", ports.ErrReferenceConflict, name)
	}
	return ports.ErrReferenceConflict
}

// GetByID fetches an order with its customer and line items.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	conn := platformpostgres.Conn(ctx, r.db)
	var record orderRecord
	if err := conn.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return r.load(conn, record)
}

func (r *Repository) load(conn *gorm.DB, record orderRecord) (*domain.Order, error) {
	order := &domain.Order{
		ID:        record.ID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	if record.CustomerID != nil {
		order.CustomerID = *record.CustomerID
		var customer customerRecord
		err := conn.First(&customer, "id = ?", *record.CustomerID).Error
		switch {
		case err == nil:
			order.Customer = customer.toDomain()
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	var items []lineItemRecord
	if err := conn.Where("order_id = ?", record.ID).Order("created_at, id").Find(&items).Error; err != nil {
		return nil, err
	}
	order.Items = make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, item.toDomain())
	}
	return order, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func nullable(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func deref(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

func (r lineItemRecord) toDomain() domain.LineItem {
	return domain.LineItem{
		ID:        r.ID,
		OrderID:   deref(r.OrderID),
		ProductID: deref(r.ProductID),
		UnitPrice: r.Price,
		Quantity:  r.Quantity,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r customerRecord) toDomain() *customerdomain.Customer {
	return &customerdomain.Customer{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
