//go:build integration

package migrations_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-orders-api/internal/platform/migrations"
	"github.com/Apurer/go-gin-orders-api/internal/platform/postgres/postgrestest"
)

func TestMigrations_UpCreatesSchema(t *testing.T) {
	db := postgrestest.Start(t)
	ctx := context.Background()

	applied, err := migrations.Applied(ctx, db)
	require.NoError(t, err)
	assert.Len(t, applied, len(migrations.All()))

	for _, table := range []string{"customers", "products", "orders", "orders_products"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasConstraint("orders_products", migrations.ConstraintOrdersProductsOrder))
	assert.True(t, db.Migrator().HasConstraint("orders_products", migrations.ConstraintOrdersProductsProduct))

	again, err := migrations.Up(ctx, db)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestMigrations_DeletingReferencedRowsSetsNull(t *testing.T) {
	db := postgrestest.Start(t)

	customerID, productID, orderID, lineID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, db.Exec(`INSERT INTO customers (id, name, email) VALUES (?, 'Ada', 'ada@example.com')`, customerID).Error)
	require.NoError(t, db.Exec(`INSERT INTO products (id, name, price, quantity) VALUES (?, 'Widget', 10.00, 5)`, productID).Error)
	require.NoError(t, db.Exec(`INSERT INTO orders (id, customer_id) VALUES (?, ?)`, orderID, customerID).Error)
	require.NoError(t, db.Exec(`INSERT INTO orders_products (id, order_id, product_id, price, quantity) VALUES (?, ?, ?, 10.00, 3)`, lineID, orderID, productID).Error)

	require.NoError(t, db.Exec(`DELETE FROM orders WHERE id = ?`, orderID).Error)
	require.NoError(t, db.Exec(`DELETE FROM products WHERE id = ?`, productID).Error)

	var row struct {
		OrderID   *uuid.UUID
		ProductID *uuid.UUID
		Quantity  int
	}
	require.NoError(t, db.Raw(`SELECT order_id, product_id, quantity FROM orders_products WHERE id = ?`, lineID).Scan(&row).Error)
	assert.Nil(t, row.OrderID)
	assert.Nil(t, row.ProductID)
	assert.Equal(t, 3, row.Quantity)
}

func TestMigrations_DownReversesInOrder(t *testing.T) {
	db := postgrestest.Start(t)
	ctx := context.Background()

	reverted, err := migrations.Down(ctx, db, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, reverted)
	assert.False(t, db.Migrator().HasTable("orders_products"))
	assert.True(t, db.Migrator().HasTable("orders"))

	reverted, err = migrations.Down(ctx, db, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, reverted)
	assert.False(t, db.Migrator().HasTable("customers"))

	applied, err := migrations.Up(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, len(migrations.All()), applied)
}
