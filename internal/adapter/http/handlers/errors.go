package handlers

import (
	"errors"
	"mecanica_workflow/internal/usecase"
	"mecanica_workflow/internal/usecase/interfaces"
	"mecanica_workflow/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// authorHeader identifies the console user performing the action when the
// body does not name one.
const authorHeader = "X-User-ID"

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(err error) *pkg.AppError {
	return pkg.NewDomainError(errInvalidRequest.Code, errInvalidRequest.Message, err, errInvalidRequest.HTTPStatus)
}

func authorID(c *gin.Context, fromBody string) string {
	if v := strings.TrimSpace(fromBody); v != "" {
		return v
	}
	return strings.TrimSpace(c.GetHeader(authorHeader))
}

// auditWarning is the message returned next to a committed change whose
// work log entry could not be written.
func auditWarning(err error) string {
	if usecase.IsAuditOnly(err) {
		return err.Error()
	}
	return ""
}

// failed reports whether err must be rendered as an error response. An
// audit-only error never is.
func failed(err error) bool {
	return err != nil && !usecase.IsAuditOnly(err)
}

// mapRuleError translates a use case error into the HTTP error shape.
// notFoundCode names the entity the handler serves.
func mapRuleError(err error, notFoundCode string) *pkg.AppError {
	message := func(fallback string) string {
		var re *usecase.RuleError
		if errors.As(err, &re) {
			return re.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError(notFoundCode, message("Resource not found"), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", message("Invalid transition"), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyAssigned):
		return pkg.NewDomainError("ALREADY_ASSIGNED", message("Already assigned"), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveAssignment):
		return pkg.NewDomainError("NO_ACTIVE_ASSIGNMENT", message("No active assignment"), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOverPayment):
		return pkg.NewDomainError("OVER_PAYMENT", message("Payment exceeds the outstanding balance"), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainError("INVOICE_ALREADY_PAID", message("Invoice already paid"), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceVoided):
		return pkg.NewDomainError("INVOICE_VOIDED", message("Invoice cancelled"), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyItems):
		return pkg.NewDomainError("EMPTY_ITEMS", message("At least one item is required"), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainError("INVALID_QUANTITY", message("Invalid quantity"), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", message("Invalid amount"), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyNote):
		return pkg.NewDomainError("EMPTY_NOTE", message("Note cannot be empty"), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidHours):
		return pkg.NewDomainError("INVALID_HOURS", message("Invalid hours"), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", message("Invalid request"), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", message("Payment declined"), err, http.StatusPaymentRequired)
	case errors.Is(err, interfaces.ErrLockTimeout):
		return pkg.NewDomainError("RESOURCE_BUSY", "The resource is being updated, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
