package migrations

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Constraint names are part of the persisted contract.
const (
	ConstraintOrdersCustomer        = "orders_vs_customers"
	ConstraintOrdersProductsOrder   = "orders_products_vs_order"
	ConstraintOrdersProductsProduct = "orders_products_vs_products"
)

// Migration is one reversible schema step. Up and Down run inside a transaction.
type Migration struct {
	Version int64
	Name    string
	Up      func(tx *gorm.DB) error
	Down    func(tx *gorm.DB) error
}

// All returns the registered migrations ordered by version.
func All() []Migration {
	list := []Migration{
		{
			Version: 1596600000000,
			Name:    "create_customers",
			Up:      func(tx *gorm.DB) error { return tx.Migrator().CreateTable(&customerRecord{}) },
			Down:    func(tx *gorm.DB) error { return tx.Migrator().DropTable(&customerRecord{}) },
		},
		{
			Version: 1596601000000,
			Name:    "create_products",
			Up:      func(tx *gorm.DB) error { return tx.Migrator().CreateTable(&productRecord{}) },
			Down:    func(tx *gorm.DB) error { return tx.Migrator().DropTable(&productRecord{}) },
		},
		{
			Version: 1596606000000,
			Name:    "create_orders",
			Up: func(tx *gorm.DB) error {
				if err := tx.Migrator().CreateTable(&orderRecord{}); err != nil {
					return err
				}
				return addSetNullForeignKey(tx, "orders", ConstraintOrdersCustomer, "customer_id", "customers")
			},
			Down: func(tx *gorm.DB) error {
				if err := tx.Migrator().DropConstraint(&orderRecord{}, ConstraintOrdersCustomer); err != nil {
					return err
				}
				return tx.Migrator().DropTable(&orderRecord{})
			},
		},
		{
			Version: 1596607760885,
			Name:    "create_orders_products",
			Up: func(tx *gorm.DB) error {
				if err := tx.Migrator().CreateTable(&orderProductRecord{}); err != nil {
					return err
				}
				if err := addSetNullForeignKey(tx, "orders_products", ConstraintOrdersProductsOrder, "order_id", "orders"); err != nil {
					return err
				}
				return addSetNullForeignKey(tx, "orders_products", ConstraintOrdersProductsProduct, "product_id", "products")
			},
			Down: func(tx *gorm.DB) error {
				if err := tx.Migrator().DropConstraint(&orderProductRecord{}, ConstraintOrdersProductsOrder); err != nil {
					return err
				}
				if err := tx.Migrator().DropConstraint(&orderProductRecord{}, ConstraintOrdersProductsProduct); err != nil {
					return err
				}
				return tx.Migrator().DropTable(&orderProductRecord{})
			},
		},
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Version < list[j].Version })
	return list
}

// Run applies every pending migration.
func Run(db *gorm.DB) error {
	_, err := Up(context.Background(), db)
	return err
}

// Up applies pending migrations in version order and returns how many ran.
func Up(ctx context.Context, db *gorm.DB) (int, error) {
	if db == nil {
		return 0, errors.New("migrations: database is nil")
	}
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range All() {
		if applied[m.Version] {
			continue
		}
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Version: m.Version, Name: m.Name}).Error
		})
		if err != nil {
			return count, fmt.Errorf("migration %d_%s up: %w", m.Version, m.Name, err)
		}
		count++
	}
	return count, nil
}

// Down reverts the most recent applied migrations; steps < 1 reverts one.
func Down(ctx context.Context, db *gorm.DB, steps int) (int, error) {
	if db == nil {
		return 0, errors.New("migrations: database is nil")
	}
	if steps < 1 {
		steps = 1
	}
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return 0, err
	}
	all := All()
	count := 0
	for i := len(all) - 1; i >= 0 && count < steps; i-- {
		m := all[i]
		if !applied[m.Version] {
			continue
		}
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return err
			}
			return tx.Delete(&schemaMigration{}, "version = ?", m.Version).Error
		})
		if err != nil {
			return count, fmt.Errorf("migration %d_%s down: %w", m.Version, m.Name, err)
		}
		count++
	}
	return count, nil
}

// Applied lists the versions recorded in schema_migrations in ascending order.
func Applied(ctx context.Context, db *gorm.DB) ([]int64, error) {
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}
	versions := make([]int64, 0, len(applied))
	for v := range applied {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	return versions, nil
}

func appliedVersions(ctx context.Context, db *gorm.DB) (map[int64]bool, error) {
	if err := db.WithContext(ctx).Migrator().AutoMigrate(&schemaMigration{}); err != nil {
		return nil, fmt.Errorf("ensure schema_migrations: %w", err)
	}
	var rows []schemaMigration
	if err := db.WithContext(ctx).Order("version").Find(&rows).Error; err != nil {
		return nil, err
	}
	applied := make(map[int64]bool, len(rows))
	for _, row := range rows {
		applied[row.Version] = true
	}
	return applied, nil
}

// addSetNullForeignKey keeps referencing rows when the referenced row goes away.
func addSetNullForeignKey(tx *gorm.DB, table, name, column, refTable string) error {
	ddl := fmt.Sprintf(
		"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE SET NULL ON UPDATE CASCADE",
		pq.QuoteIdentifier(table),
		pq.QuoteIdentifier(name),
		pq.QuoteIdentifier(column),
		pq.QuoteIdentifier(refTable),
	)
	return tx.Exec(ddl).Error
}
