package ordersserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/application"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-gin-orders-api/internal/shared/errors"
)

var orderResponder = apierrors.NewChainedResponder("", orderProblem)

func respondOrderError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	orderResponder.RespondError(c, err)
}

// orderProblem maps order use case failures to problem details. Unknown errors
// fall through to the responder's internal error handling.
func orderProblem(err error) (apierrors.ProblemDetail, bool) {
	var (
		missing      *domain.ProductNotFoundError
		insufficient *domain.InsufficientInventoryError
	)
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, domain.ErrCustomerNotFound):
		return apierrors.NewCodedProblem(apierrors.ErrUnprocessable, "customer_not_found", err.Error()), true
	case errors.As(err, &missing):
		ids := make([]string, 0, len(missing.ProductIDs))
		for _, id := range missing.ProductIDs {
			ids = append(ids, id.String())
		}
		return apierrors.NewCodedProblem(apierrors.ErrUnprocessable, "product_not_found", err.Error()).
			WithExtension("productIds", ids), true
	case errors.Is(err, domain.ErrProductNotFound):
		return apierrors.NewCodedProblem(apierrors.ErrUnprocessable, "product_not_found", err.Error()), true
	case errors.As(err, &insufficient):
		return apierrors.NewCodedProblem(apierrors.ErrConflict, "insufficient_inventory", err.Error()).
			WithExtension("productId", insufficient.ProductID.String()).
			WithExtension("requested", insufficient.Requested).
			WithExtension("available", insufficient.Available), true
	case errors.Is(err, domain.ErrInsufficientInventory):
		return apierrors.NewCodedProblem(apierrors.ErrConflict, "insufficient_inventory", err.Error()), true
	case errors.Is(err, orderports.ErrReferenceConflict):
		return apierrors.NewCodedProblem(apierrors.ErrConflict, "reference_conflict", err.Error()), true
	case errors.Is(err, orderports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}
