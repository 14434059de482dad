package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Apurer/go-gin-orders-api/internal/app/config"
	"github.com/Apurer/go-gin-orders-api/internal/platform/migrations"
	platformpostgres "github.com/Apurer/go-gin-orders-api/internal/platform/postgres"
)

const defaultTimeout = 30 * time.Second

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("migrate", flag.ContinueOnError)
	var (
		direction string
		steps     int
		dsn       string
	)
	flags.StringVar(&direction, "direction", "up", "migration direction: up|down|status")
	flags.IntVar(&steps, "steps", 1, "number of migrations to roll back with -direction=down")
	flags.StringVar(&dsn, "dsn", "", "PostgreSQL DSN (fallback: POSTGRES_DSN)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	direction = strings.ToLower(strings.TrimSpace(direction))
	switch direction {
	case "up", "down", "status":
	default:
		return fmt.Errorf("unsupported direction: %s (use up|down|status)", direction)
	}
	if direction == "down" && steps <= 0 {
		return fmt.Errorf("-steps must be positive, got %d", steps)
	}
	if strings.TrimSpace(dsn) == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dsn = cfg.PostgresDSN
	}
	if dsn == "" {
		return fmt.Errorf("POSTGRES_DSN (or -dsn) is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	switch direction {
	case "up":
		applied, err := migrations.Up(ctx, db)
		if err != nil {
			return fmt.Errorf("migrate up failed: %w", err)
		}
		_, _ = fmt.Fprintf(out, "migrate up ok: applied=%d\n", applied)
	case "down":
		reverted, err := migrations.Down(ctx, db, steps)
		if err != nil {
			return fmt.Errorf("migrate down failed: %w", err)
		}
		_, _ = fmt.Fprintf(out, "migrate down ok: reverted=%d\n", reverted)
	}
	versions, err := migrations.Applied(ctx, db)
	if err != nil {
		return fmt.Errorf("migration status failed: %w", err)
	}
	_, _ = fmt.Fprintf(out, "migration status: applied=%d of %d\n", len(versions), len(migrations.All()))
	return nil
}
