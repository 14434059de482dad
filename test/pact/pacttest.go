//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/uuid"
)

const (
	ProviderName = "orders-api"
	ConsumerName = "checkout-portal"

	StateCatalogSeeded = "customer C1 and product P1 with 5 units exist"
	StateOrderExists   = "order O1 exists for customer C1"
	StateNoOrders      = "no orders exist"
)

var (
	CustomerID      = uuid.MustParse("6f2d3c1e-6a43-4c3b-9d1f-0c8d8a8e0001")
	ProductID       = uuid.MustParse("6f2d3c1e-6a43-4c3b-9d1f-0c8d8a8e0002")
	ExistingOrderID = uuid.MustParse("6f2d3c1e-6a43-4c3b-9d1f-0c8d8a8e0003")
	MissingOrderID  = uuid.MustParse("6f2d3c1e-6a43-4c3b-9d1f-0c8d8a8e0404")
)

const (
	CustomerName  = "Pact Customer"
	CustomerEmail = "pact.customer@example.com"
	ProductName   = "Pact Widget"
	ProductPrice  = "10.00"
	ProductStock  = 5
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the checkout portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// PlaceOrderPayload provides stable request data for placement interactions.
func PlaceOrderPayload(quantity int) map[string]any {
	return map[string]any{
		"customer_id": CustomerID.String(),
		"products": []map[string]any{
			{"id": ProductID.String(), "quantity": quantity},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
