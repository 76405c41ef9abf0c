package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	appconfig "mecanica_workflow/internal/infrastructure/config"
	"mecanica_workflow/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const sandboxPayerEmail = "test_user_br@testuser.com"

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	settings appconfig.MercadoPago
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(settings appconfig.MercadoPago) (*MercadoPagoGateway, error) {
	if settings.Mock {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, settings: settings}, nil
	}

	if settings.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(settings.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), settings: settings}, nil
}

// Charge creates a payment for exactly req.Amount. The caller payload
// supplies payer and card/token data; amount, reference and description
// always come from the invoice.
func (g *MercadoPagoGateway) Charge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	if g == nil {
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	body := map[string]any{}
	if len(req.Payload) > 0 {
		if err := json.Unmarshal(req.Payload, &body); err != nil {
			log.Printf("[payment][gateway] payload unmarshal failed invoice_id=%s err=%v", req.InvoiceID, err)
			return interfaces.ChargeResult{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidChargePayload, err)
		}
	}
	if body == nil {
		body = map[string]any{}
	}

	if !g.mockMode {
		if !hasNonEmptyString(body, "payment_method_id") {
			log.Printf("[payment][gateway] missing payment_method_id invoice_id=%s", req.InvoiceID)
			return interfaces.ChargeResult{}, fmt.Errorf("%w: payment_method_id is required", interfaces.ErrInvalidChargePayload)
		}
		g.normalizeSandboxPayerFromUserID(body)
		g.ensurePayerDefaults(body)
		if !hasPayer(body) {
			log.Printf("[payment][gateway] missing/invalid payer invoice_id=%s", req.InvoiceID)
			return interfaces.ChargeResult{}, fmt.Errorf("%w: payer.email or payer.id is required", interfaces.ErrInvalidChargePayload)
		}
	}

	// Mercado Pago uses external_reference to help reconcile events.
	body["external_reference"] = req.InvoiceID
	if _, ok := body["description"]; !ok {
		body["description"] = fmt.Sprintf("Invoice %s", req.InvoiceCode)
	}
	body["transaction_amount"] = req.Amount.InexactFloat64()

	if g.mockMode {
		return g.mockCharge(body)
	}
	if g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return interfaces.ChargeResult{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(raw, &sdkReq); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return interfaces.ChargeResult{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidChargePayload, err)
	}

	log.Printf("[payment][gateway] charge start invoice_id=%s amount=%s", req.InvoiceID, req.Amount.StringFixed(2))
	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.ChargeResult{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.ChargeResult{}, err
	}
	log.Printf("[payment][gateway] charge success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return interfaces.ChargeResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		ProviderResponse:  b,
	}, nil
}

func (g *MercadoPagoGateway) mockCharge(body map[string]any) (interfaces.ChargeResult, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	body["id"] = id
	body["status"] = "approved"
	body["status_detail"] = "accredited"
	if _, ok := body["date_created"]; !ok {
		body["date_created"] = now
	}
	if _, ok := body["date_approved"]; !ok {
		body["date_approved"] = now
	}

	b, err := json.Marshal(body)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.ChargeResult{}, err
	}
	log.Printf("[payment][gateway] mock charge success provider_payment_id=%s provider_status=approved", id)
	return interfaces.ChargeResult{ProviderPaymentID: id, ProviderStatus: "approved", ProviderResponse: b}, nil
}

func (g *MercadoPagoGateway) sandbox() bool {
	return strings.HasPrefix(g.settings.AccessToken, "TEST-")
}

func (g *MercadoPagoGateway) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if g.settings.TestPayerEmail != "" {
			payer["email"] = g.settings.TestPayerEmail
		} else if g.sandbox() {
			payer["email"] = sandboxPayerEmail
		}
	}
}

func (g *MercadoPagoGateway) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !g.sandbox() {
		return
	}
	if g.settings.TestPayerUserID == "" || g.settings.TestPayerEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != g.settings.TestPayerUserID {
		return
	}

	payer["email"] = g.settings.TestPayerEmail
	delete(payer, "id")
	log.Printf("[payment][gateway] mapped sandbox payer user_id to payer.email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
