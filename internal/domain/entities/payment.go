package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodCodeMercadoPago marks methods charged through the payment
// gateway before the payment is written to the ledger.
const PaymentMethodCodeMercadoPago = "MERCADOPAGO"

// PaymentMethod is read-only reference data.
type PaymentMethod struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func (m PaymentMethod) UsesGateway() bool {
	return m.Code == PaymentMethodCodeMercadoPago
}

// Payment is an entry of an invoice's payment ledger.
//
// Storage model (DynamoDB):
//   - PK: invoice_id, SK: id
//
// Payments are immutable. Provider fields are only set for gateway methods:
//   - ProviderPayloadRaw keeps the provider response (JSON) for traceability/audit.
type Payment struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	MethodID  string          `json:"method_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	PaidAt    time.Time       `json:"paid_at"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
