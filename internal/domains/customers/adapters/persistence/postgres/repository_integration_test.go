//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/customers/ports"
	"github.com/Apurer/go-gin-orders-api/internal/platform/postgres/postgrestest"
)

func TestRepository_SaveAndFindByID(t *testing.T) {
	repo := NewRepository(postgrestest.Start(t))
	ctx := context.Background()

	customer, err := domain.NewCustomer("Ada", "ada@example.com")
	require.NoError(t, err)

	saved, err := repo.Save(ctx, customer)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_DuplicateEmail(t *testing.T) {
	repo := NewRepository(postgrestest.Start(t))
	ctx := context.Background()

	first, err := domain.NewCustomer("Ada", "ada@example.com")
	require.NoError(t, err)
	_, err = repo.Save(ctx, first)
	require.NoError(t, err)

	second, err := domain.NewCustomer("Ada Two", "ada@example.com")
	require.NoError(t, err)
	_, err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, ports.ErrDuplicateEmail)
}
