package application

import (
	"errors"
	"fmt"

	customerports "github.com/Apurer/go-gin-orders-api/internal/domains/customers/ports"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrInventoryNotApplied is returned when the order was written but the inventory
	// write failed outside a transaction; the order stays recorded.
	ErrInventoryNotApplied = errors.New("order recorded but inventory was not decremented")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrCustomerRequired) ||
		errors.Is(err, domain.ErrItemsRequired) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrDuplicateProduct) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, customerports.ErrNotFound) {
		return domain.ErrCustomerNotFound
	}
	return err
}
