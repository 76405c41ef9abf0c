package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidChargePayload is returned by gateways when the provider body
// misses what the provider needs (payment method, payer).
var ErrInvalidChargePayload = errors.New("invalid payment gateway payload")

// ChargeRequest describes one charge against an invoice.
//
// Payload is the caller-supplied provider body (payer, token, method...). The
// gateway overwrites the amount, reference and description with the values
// below: the ledger, not the client, decides how much is charged.
type ChargeRequest struct {
	InvoiceID   string
	InvoiceCode string
	Amount      decimal.Decimal
	Currency    string
	Payload     json.RawMessage
}

// ChargeResult is what the provider answered.
type ChargeResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	ProviderResponse  json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The invoice workflow uses it to charge gateway-backed payment methods and
// persists the provider response on the payment for traceability.
type IPaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}
