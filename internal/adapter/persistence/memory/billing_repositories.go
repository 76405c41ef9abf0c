package memory

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
	"time"
)

type QuotationRepository struct{ store *Store }

func NewQuotationRepository(store *Store) *QuotationRepository {
	return &QuotationRepository{store: store}
}

var _ interfaces.IQuotationRepository = (*QuotationRepository)(nil)

func (r *QuotationRepository) Create(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.quotations[q.ID]; ok {
		return entities.Quotation{}, ErrDuplicateID
	}
	r.store.quotations[q.ID] = copyQuotation(q)
	return copyQuotation(q), nil
}

func (r *QuotationRepository) GetByID(_ context.Context, id string) (entities.Quotation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	q, ok := r.store.quotations[id]
	if !ok {
		return entities.Quotation{}, nil
	}
	return copyQuotation(q), nil
}

func (r *QuotationRepository) ListByWorkOrderID(_ context.Context, workOrderID string) ([]entities.Quotation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]entities.Quotation, 0)
	for _, q := range r.store.quotations {
		if q.WorkOrderID == workOrderID {
			out = append(out, copyQuotation(q))
		}
	}
	return out, nil
}

func (r *QuotationRepository) UpdateStatus(_ context.Context, id string, status entities.QuotationStatus, decidedAt *time.Time) (entities.Quotation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	q, ok := r.store.quotations[id]
	if !ok {
		return entities.Quotation{}, nil
	}
	q.Status = status
	q.DecidedAt = decidedAt
	q.UpdatedAt = time.Now().UTC()
	q = copyQuotation(q)
	r.store.quotations[id] = q
	return copyQuotation(q), nil
}

type InvoiceRepository struct{ store *Store }

func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) Create(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.invoices[inv.ID]; ok {
		return entities.Invoice{}, ErrDuplicateID
	}
	for _, existing := range r.store.invoices {
		if existing.QuotationID == inv.QuotationID {
			return entities.Invoice{}, interfaces.ErrQuotationAlreadyInvoiced
		}
	}
	r.store.invoices[inv.ID] = copyInvoice(inv)
	return copyInvoice(inv), nil
}

func (r *InvoiceRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	inv, ok := r.store.invoices[id]
	if !ok {
		return entities.Invoice{}, nil
	}
	return copyInvoice(inv), nil
}

func (r *InvoiceRepository) GetByQuotationID(_ context.Context, quotationID string) (entities.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, inv := range r.store.invoices {
		if inv.QuotationID == quotationID {
			return copyInvoice(inv), nil
		}
	}
	return entities.Invoice{}, nil
}

func (r *InvoiceRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]entities.Invoice, 0)
	for _, inv := range r.store.invoices {
		if inv.CustomerID == customerID {
			out = append(out, copyInvoice(inv))
		}
	}
	return out, nil
}

func (r *InvoiceRepository) UpdateStatus(_ context.Context, id string, status entities.InvoiceStatus, notes string) (entities.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inv, ok := r.store.invoices[id]
	if !ok {
		return entities.Invoice{}, nil
	}
	inv.Status = status
	inv.Notes = notes
	inv.UpdatedAt = time.Now().UTC()
	r.store.invoices[id] = inv
	return copyInvoice(inv), nil
}

type PaymentRepository struct{ store *Store }

func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.payments[p.ID]; ok {
		return entities.Payment{}, ErrDuplicateID
	}
	r.store.payments[p.ID] = copyPayment(p)
	return copyPayment(p), nil
}

func (r *PaymentRepository) ListByInvoiceID(_ context.Context, invoiceID string) ([]entities.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]entities.Payment, 0)
	for _, p := range r.store.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, copyPayment(p))
		}
	}
	return out, nil
}

type PaymentMethodRepository struct{ store *Store }

func NewPaymentMethodRepository(store *Store) *PaymentMethodRepository {
	return &PaymentMethodRepository{store: store}
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodRepository)(nil)

func (r *PaymentMethodRepository) GetByID(_ context.Context, id string) (entities.PaymentMethod, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.methods[id], nil
}

func (r *PaymentMethodRepository) List(_ context.Context) ([]entities.PaymentMethod, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]entities.PaymentMethod, 0, len(r.store.methods))
	for _, m := range r.store.methods {
		out = append(out, m)
	}
	return out, nil
}

type ProductCatalog struct{ store *Store }

func NewProductCatalog(store *Store) *ProductCatalog {
	return &ProductCatalog{store: store}
}

var _ interfaces.IProductCatalog = (*ProductCatalog)(nil)

func (c *ProductCatalog) GetByID(_ context.Context, id string) (entities.Product, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return c.store.products[id], nil
}
