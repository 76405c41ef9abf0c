package interfaces

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
)

// IPaymentRepository is the payment ledger. Entries are immutable.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

// IPaymentMethodRepository reads payment method reference data.

type IPaymentMethodRepository interface {
	GetByID(ctx context.Context, id string) (entities.PaymentMethod, error)
	List(ctx context.Context) ([]entities.PaymentMethod, error)
}
