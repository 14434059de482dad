package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrCustomerRequired = errors.New("customer id is required")
	ErrItemsRequired    = errors.New("order must contain at least one product")
	ErrInvalidQuantity  = errors.New("product quantity must be greater than zero")
	ErrDuplicateProduct = errors.New("product listed more than once")

	ErrCustomerNotFound      = errors.New("customer does not exist")
	ErrProductNotFound       = errors.New("product not found")
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// ProductNotFoundError lists the requested product ids that did not resolve.
type ProductNotFoundError struct {
	ProductIDs []uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	ids := make([]string, 0, len(e.ProductIDs))
	for _, id := range e.ProductIDs {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("%s: %s", ErrProductNotFound, strings.Join(ids, ", "))
}

func (e *ProductNotFoundError) Is(target error) bool { return target == ErrProductNotFound }

// InsufficientInventoryError names the product whose stock cannot cover the request.
type InsufficientInventoryError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("%s for product %s: requested %d, available %d", ErrInsufficientInventory, e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Is(target error) bool { return target == ErrInsufficientInventory }
