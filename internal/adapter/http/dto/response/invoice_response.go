package response

import (
	"encoding/json"
	"mecanica_workflow/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// money renders amounts with two decimals as strings so no client parses
// them into a float.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type BalanceResponse struct {
	Total       string `json:"total"`
	Paid        string `json:"paid"`
	Outstanding string `json:"outstanding"`
	Status      string `json:"status"`
}

func FromBalance(b entities.Balance) BalanceResponse {
	return BalanceResponse{
		Total:       money(b.Total),
		Paid:        money(b.Paid),
		Outstanding: money(b.Outstanding),
		Status:      string(b.Status),
	}
}

type InvoiceItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type InvoiceResponse struct {
	ID           string                `json:"id"`
	Code         string                `json:"code"`
	WorkOrderID  string                `json:"work_order_id"`
	QuotationID  string                `json:"quotation_id"`
	CustomerID   string                `json:"customer_id,omitempty"`
	Currency     string                `json:"currency"`
	IssueDate    time.Time             `json:"issue_date"`
	DueDate      *time.Time            `json:"due_date,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	Items        []InvoiceItemResponse `json:"items"`
	Balance      BalanceResponse       `json:"balance"`
	AuditWarning string                `json:"audit_warning,omitempty"`
}

// FromInvoice renders an invoice with its derived balance. The persisted
// status is not exposed; balance.status is the authoritative one.
func FromInvoice(inv entities.Invoice, bal entities.Balance) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     money(it.Price),
		})
	}
	return InvoiceResponse{
		ID:          inv.ID,
		Code:        inv.Code,
		WorkOrderID: inv.WorkOrderID,
		QuotationID: inv.QuotationID,
		CustomerID:  inv.CustomerID,
		Currency:    inv.Currency,
		IssueDate:   inv.IssueDate,
		DueDate:     inv.DueDate,
		Notes:       inv.Notes,
		Items:       items,
		Balance:     FromBalance(bal),
	}
}

type PaymentResponse struct {
	ID                string    `json:"id"`
	InvoiceID         string    `json:"invoice_id"`
	MethodID          string    `json:"method_id"`
	Amount            string    `json:"amount"`
	Reference         string    `json:"reference,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	PaidAt            time.Time `json:"paid_at"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`

	ProviderPayloadRaw string         `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`

	AuditWarning string `json:"audit_warning,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		MethodID:          p.MethodID,
		Amount:            money(p.Amount),
		Reference:         p.Reference,
		Notes:             p.Notes,
		PaidAt:            p.PaidAt,
		ProviderPaymentID: p.ProviderPaymentID,
	}
	if len(p.ProviderPayloadRaw) > 0 {
		res.ProviderPayloadRaw = string(p.ProviderPayloadRaw)
		var decoded map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &decoded); err == nil {
			res.ProviderPayload = decoded
		}
	}
	return res
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}

type PaymentMethodResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func FromPaymentMethods(list []entities.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		out = append(out, PaymentMethodResponse{ID: m.ID, Code: m.Code, Name: m.Name})
	}
	return out
}
