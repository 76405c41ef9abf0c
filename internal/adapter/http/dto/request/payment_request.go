package request

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records a payment against an invoice.
//
// `mp_payload` is forwarded as-is (raw JSON) to the payment gateway for
// gateway-backed methods, to support varying Mercado Pago schemas. Amount,
// reference and description sent to the provider always come from the invoice.
type CreatePaymentRequest struct {
	InvoiceID string          `json:"invoice_id" binding:"required"`
	MethodID  string          `json:"method_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
	AuthorID  string          `json:"author_id"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ResolveGatewayPayload drops an empty or null mp_payload.
func (r CreatePaymentRequest) ResolveGatewayPayload() json.RawMessage {
	raw := strings.TrimSpace(string(r.MPPayload))
	if raw == "" || raw == "null" {
		return nil
	}
	return r.MPPayload
}

type CancelInvoiceRequest struct {
	Reason   string `json:"reason" binding:"required"`
	AuthorID string `json:"author_id"`
}
