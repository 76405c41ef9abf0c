package interfaces

import (
	"context"
	"errors"
	"mecanica_workflow/internal/domain/entities"
)

// ErrQuotationAlreadyInvoiced is returned by Create when another invoice was
// already stored for the same quotation.
var ErrQuotationAlreadyInvoiced = errors.New("quotation already has an invoice")

// IInvoiceRepository abstracts persistence for Invoice.
//
// The stored status is a projection; callers recompute it from the payment
// ledger and write it back through UpdateStatus. Create enforces one invoice
// per quotation and GetByQuotationID must observe every committed Create.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByQuotationID(ctx context.Context, quotationID string) (entities.Invoice, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus, notes string) (entities.Invoice, error)
}
