//go:build integration

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRun_UpDownStatus(t *testing.T) {
	ctx := context.Background()
	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("orders_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").WithOccurrence(2)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-direction=up", "-dsn=" + dsn}, &out))
	require.Contains(t, out.String(), "applied=4 of 4")

	out.Reset()
	require.NoError(t, run([]string{"-direction=down", "-steps=1", "-dsn=" + dsn}, &out))
	require.Contains(t, out.String(), "applied=3 of 4")

	out.Reset()
	require.NoError(t, run([]string{"-direction=status", "-dsn=" + dsn}, &out))
	require.Contains(t, out.String(), "applied=3 of 4")
}
