package interfaces

import (
	"context"
	"time"

	"mecanica_workflow/internal/domain/entities"
)

// IQuotationRepository abstracts persistence for Quotation.
//
// UpdateStatus returns a zero Quotation when the id does not exist.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus, decidedAt *time.Time) (entities.Quotation, error)
}
