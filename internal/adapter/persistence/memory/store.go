package memory

import (
	"errors"
	"mecanica_workflow/internal/domain/entities"
	"sync"

	"github.com/shopspring/decimal"
)

var ErrDuplicateID = errors.New("item with the same id already exists")

// Store keeps every workflow table in process memory. It backs local runs
// (STORAGE_DRIVER=memory) and the use case tests. Values go in and out by
// copy so callers never share slices with the store.
type Store struct {
	mu sync.RWMutex

	workOrders  map[string]entities.WorkOrder
	assignments map[string]entities.WorkAssignment
	workLogs    map[string]entities.WorkLog
	quotations  map[string]entities.Quotation
	invoices    map[string]entities.Invoice
	payments    map[string]entities.Payment
	methods     map[string]entities.PaymentMethod
	products    map[string]entities.Product
}

func NewStore() *Store {
	return &Store{
		workOrders:  make(map[string]entities.WorkOrder),
		assignments: make(map[string]entities.WorkAssignment),
		workLogs:    make(map[string]entities.WorkLog),
		quotations:  make(map[string]entities.Quotation),
		invoices:    make(map[string]entities.Invoice),
		payments:    make(map[string]entities.Payment),
		methods:     make(map[string]entities.PaymentMethod),
		products:    make(map[string]entities.Product),
	}
}

// DefaultPaymentMethods is the reference data a fresh store starts with.
func DefaultPaymentMethods() []entities.PaymentMethod {
	return []entities.PaymentMethod{
		{ID: "1", Code: "CASH", Name: "Efectivo"},
		{ID: "2", Code: "CARD", Name: "Tarjeta"},
		{ID: "3", Code: "TRANSFER", Name: "Transferencia"},
		{ID: "4", Code: entities.PaymentMethodCodeMercadoPago, Name: "Mercado Pago"},
	}
}

// DefaultProducts is a small catalog for local runs.
func DefaultProducts() []entities.Product {
	return []entities.Product{
		{ID: "prod-oil-10w40", Name: "Aceite 10W-40", Brand: "Castrol", Category: "Lubricantes", Unit: "litro", Price: decimal.RequireFromString("85.00")},
		{ID: "prod-oil-filter", Name: "Filtro de aceite", Brand: "Bosch", Category: "Filtros", Unit: "unidad", Price: decimal.RequireFromString("60.00")},
		{ID: "prod-brake-pads", Name: "Pastillas de freno delanteras", Brand: "Brembo", Category: "Frenos", Unit: "juego", Price: decimal.RequireFromString("450.00")},
		{ID: "svc-labour-hour", Name: "Mano de obra", Category: "Servicios", Unit: "hora", Price: decimal.RequireFromString("150.00")},
	}
}

// SeedPaymentMethods replaces the payment method reference data.
func (s *Store) SeedPaymentMethods(methods ...entities.PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods = make(map[string]entities.PaymentMethod, len(methods))
	for _, m := range methods {
		s.methods[m.ID] = m
	}
}

// SeedProducts adds or replaces catalog entries.
func (s *Store) SeedProducts(products ...entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		s.products[p.ID] = p
	}
}

func copyQuotation(q entities.Quotation) entities.Quotation {
	q.Items = append([]entities.QuotationItem(nil), q.Items...)
	if q.DecidedAt != nil {
		t := *q.DecidedAt
		q.DecidedAt = &t
	}
	return q
}

func copyInvoice(inv entities.Invoice) entities.Invoice {
	inv.Items = append([]entities.InvoiceItem(nil), inv.Items...)
	if inv.DueDate != nil {
		t := *inv.DueDate
		inv.DueDate = &t
	}
	return inv
}

func copyAssignment(a entities.WorkAssignment) entities.WorkAssignment {
	if a.ReleasedAt != nil {
		t := *a.ReleasedAt
		a.ReleasedAt = &t
	}
	return a
}

func copyWorkOrder(o entities.WorkOrder) entities.WorkOrder {
	if o.ClosedAt != nil {
		t := *o.ClosedAt
		o.ClosedAt = &t
	}
	return o
}

func copyPayment(p entities.Payment) entities.Payment {
	p.ProviderPayloadRaw = append([]byte(nil), p.ProviderPayloadRaw...)
	return p
}
