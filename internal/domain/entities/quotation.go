package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus represents the lifecycle of a quotation (cotización).
//
// Domain notes:
//   - APPROVED and REJECTED are terminal; a rejected scope needs a new quotation.
//   - The console sends numeric ids: 1=DRAFT 2=SENT 3=APPROVED 4=REJECTED.
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "DRAFT"
	QuotationStatusSent     QuotationStatus = "SENT"
	QuotationStatusApproved QuotationStatus = "APPROVED"
	QuotationStatusRejected QuotationStatus = "REJECTED"
)

func (s QuotationStatus) IsTerminal() bool {
	return s == QuotationStatusApproved || s == QuotationStatusRejected
}

func (s QuotationStatus) ID() int {
	switch s {
	case QuotationStatusDraft:
		return 1
	case QuotationStatusSent:
		return 2
	case QuotationStatusApproved:
		return 3
	case QuotationStatusRejected:
		return 4
	}
	return 0
}

func QuotationStatusFromID(id int) (QuotationStatus, bool) {
	switch id {
	case 1:
		return QuotationStatusDraft, true
	case 2:
		return QuotationStatusSent, true
	case 3:
		return QuotationStatusApproved, true
	case 4:
		return QuotationStatusRejected, true
	}
	return "", false
}

// QuotationItem is a priced line. Name, brand, category and unit are copied
// from the catalog when the quotation is created so later catalog edits do
// not rewrite an offer already made to the client.
type QuotationItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Category  string          `json:"category,omitempty"`
	Unit      string          `json:"unit,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func (i QuotationItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Quotation is the proposed billable scope of a work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// Monetary representation:
//   - Total is always derived from the items, never stored or client supplied.
type Quotation struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	WorkOrderID string          `json:"work_order_id"`
	Status      QuotationStatus `json:"status"`
	ApproveBy   string          `json:"approve_by,omitempty"`
	Items       []QuotationItem `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DecidedAt   *time.Time      `json:"decided_at,omitempty"`
}

func (q Quotation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range q.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}
