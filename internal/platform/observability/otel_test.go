package observability

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLevel(" WARN "))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestInit_ProvidesNamedInstruments(t *testing.T) {
	ctx := context.Background()
	instruments, shutdown, err := Init(ctx, Settings{ServiceName: "orders-test", OTLPInsecure: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	})

	require.NotNil(t, instruments.Logger)
	require.NotNil(t, instruments.Tracer("orders"))
	require.NotNil(t, instruments.Meter("orders"))

	_, span := instruments.Tracer("orders").Start(ctx, "op")
	require.True(t, span.SpanContext().IsValid())
	span.End()
}

func TestInstruments_NilFallbacks(t *testing.T) {
	var instruments *Instruments
	require.NotNil(t, instruments.Tracer("orders"))
	require.NotNil(t, instruments.Meter("orders"))
}
