package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusIssued        InvoiceStatus = "ISSUED"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
)

// InvoiceItem mirrors a quotation item; QuotationID+ProductID is its key.
type InvoiceItem struct {
	QuotationID string          `json:"quotation_id"`
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand,omitempty"`
	Category    string          `json:"category,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Invoice is the billable record issued when a quotation is approved.
//
// Storage model (DynamoDB):
//   - PK: id
//   - reservation row id = "quotation#<quotation_id>" (one invoice per quotation)
//   - GSI1 (customer_id-index): customer_id
//
// The outstanding balance is not part of the record. It is derived from the
// payment ledger every time it is needed (see ComputeBalance). Status is
// persisted only as a projection of that derivation.
type Invoice struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	WorkOrderID string          `json:"work_order_id"`
	QuotationID string          `json:"quotation_id"`
	CustomerID  string          `json:"customer_id,omitempty"`
	Status      InvoiceStatus   `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
	IssueDate   time.Time       `json:"issue_date"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Items       []InvoiceItem   `json:"items"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Balance is the read-only reconciliation projection of an invoice.
type Balance struct {
	Total       decimal.Decimal `json:"total"`
	Paid        decimal.Decimal `json:"paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Status      InvoiceStatus   `json:"status"`
}

// InvoiceStatusFor is the pure status rule for a non-cancelled invoice.
func InvoiceStatusFor(total, outstanding decimal.Decimal) InvoiceStatus {
	switch {
	case outstanding.Sign() <= 0:
		return InvoiceStatusPaid
	case outstanding.GreaterThanOrEqual(total):
		return InvoiceStatusIssued
	default:
		return InvoiceStatusPartiallyPaid
	}
}

// ComputeBalance derives the balance of inv from its payment ledger.
// Payments that belong to another invoice are ignored.
func ComputeBalance(inv Invoice, payments []Payment) Balance {
	paid := decimal.Zero
	for _, p := range payments {
		if p.InvoiceID != inv.ID {
			continue
		}
		paid = paid.Add(p.Amount)
	}

	outstanding := inv.Total.Sub(paid)
	if outstanding.Sign() < 0 {
		outstanding = decimal.Zero
	}

	status := InvoiceStatusFor(inv.Total, outstanding)
	if inv.Status == InvoiceStatusCancelled {
		status = InvoiceStatusCancelled
	}

	return Balance{Total: inv.Total, Paid: paid, Outstanding: outstanding, Status: status}
}
