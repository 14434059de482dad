package orders

import (
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

// Application error types shared by the activity and the orchestrator.
const (
	ErrTypeInvalidInput          = "InvalidInput"
	ErrTypeCustomerNotFound      = "CustomerNotFound"
	ErrTypeProductNotFound       = "ProductNotFound"
	ErrTypeInsufficientInventory = "InsufficientInventory"
	ErrTypeReferenceConflict     = "ReferenceConflict"
	ErrTypeInventoryNotApplied   = "InventoryNotApplied"
)

var invalidInputReasons = []error{
	domain.ErrCustomerRequired,
	domain.ErrItemsRequired,
	domain.ErrInvalidQuantity,
	domain.ErrDuplicateProduct,
}

// EncodeError turns a placement failure into a non-retryable application error
// carrying enough detail to rebuild the typed error on the caller side.
// Infrastructure errors pass through unchanged.
func EncodeError(err error) error {
	var (
		notFound     *domain.ProductNotFoundError
		insufficient *domain.InsufficientInventoryError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &notFound):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeProductNotFound, err, *notFound)
	case errors.As(err, &insufficient):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInsufficientInventory, err, *insufficient)
	case errors.Is(err, domain.ErrCustomerNotFound):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeCustomerNotFound, err)
	case errors.Is(err, application.ErrInvalidInput):
		reason := ""
		for _, candidate := range invalidInputReasons {
			if errors.Is(err, candidate) {
				reason = candidate.Error()
			}
		}
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidInput, err, reason)
	case errors.Is(err, ports.ErrReferenceConflict):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeReferenceConflict, err)
	case errors.Is(err, application.ErrInventoryNotApplied):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInventoryNotApplied, err)
	default:
		return err
	}
}

// DecodeError rebuilds the typed placement error from a workflow or activity failure.
// Errors without a known application error type are returned unchanged.
func DecodeError(err error) error {
	var appErr *temporal.ApplicationError
	if err == nil || !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type() {
	case ErrTypeProductNotFound:
		var detail domain.ProductNotFoundError
		if appErr.HasDetails() && appErr.Details(&detail) == nil {
			return &detail
		}
		return domain.ErrProductNotFound
	case ErrTypeInsufficientInventory:
		var detail domain.InsufficientInventoryError
		if appErr.HasDetails() && appErr.Details(&detail) == nil {
			return &detail
		}
		return domain.ErrInsufficientInventory
	case ErrTypeCustomerNotFound:
		return domain.ErrCustomerNotFound
	case ErrTypeInvalidInput:
		var reason string
		if appErr.HasDetails() && appErr.Details(&reason) == nil {
			for _, candidate := range invalidInputReasons {
				if candidate.Error() == reason {
					return fmt.Errorf("%w: %w", application.ErrInvalidInput, candidate)
				}
			}
		}
		return fmt.Errorf("%w: %s", application.ErrInvalidInput, appErr.Message())
	case ErrTypeReferenceConflict:
		return ports.ErrReferenceConflict
	case ErrTypeInventoryNotApplied:
		return fmt.Errorf("%w: %s", application.ErrInventoryNotApplied, appErr.Message())
	default:
		return err
	}
}
