package migrations

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Schema records mirror the postgres adapters at the version they were introduced.
// Relations are declared as explicit constraints in the migrations, not as GORM associations.

type customerRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:customers_email_key"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;not null;default:now()"`
}

func (customerRecord) TableName() string { return "customers" }

type productRecord struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Name      string          `gorm:"column:name;type:varchar(255);not null;uniqueIndex:products_name_key"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(5,2);not null;default:0"`
	Quantity  int             `gorm:"column:quantity;type:int;not null;default:0;check:products_quantity_check,quantity >= 0"`
	CreatedAt time.Time       `gorm:"column:created_at;type:timestamp;not null;default:now()"`
	UpdatedAt time.Time       `gorm:"column:updated_at;type:timestamp;not null;default:now()"`
}

func (productRecord) TableName() string { return "products" }

type orderRecord struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	CustomerID *uuid.UUID `gorm:"type:uuid;column:customer_id;index:idx_orders_customer_id"`
	CreatedAt  time.Time  `gorm:"column:created_at;type:timestamp;not null;default:now()"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;type:timestamp;not null;default:now()"`
}

func (orderRecord) TableName() string { return "orders" }

type orderProductRecord struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	ProductID *uuid.UUID      `gorm:"type:uuid;column:product_id"`
	OrderID   *uuid.UUID      `gorm:"type:uuid;column:order_id;index:idx_orders_products_order_id"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(5,2);default:0"`
	Quantity  int             `gorm:"column:quantity;type:int;default:0"`
	CreatedAt time.Time       `gorm:"column:created_at;type:timestamp;not null;default:now()"`
	UpdatedAt time.Time       `gorm:"column:updated_at;type:timestamp;not null;default:now()"`
}

func (orderProductRecord) TableName() string { return "orders_products" }

type schemaMigration struct {
	Version   int64     `gorm:"primaryKey;column:version;autoIncrement:false"`
	Name      string    `gorm:"column:name;not null"`
	AppliedAt time.Time `gorm:"column:applied_at;not null;default:now()"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }
