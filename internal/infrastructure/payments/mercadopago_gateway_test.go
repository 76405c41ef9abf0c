package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	appconfig "mecanica_workflow/internal/infrastructure/config"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(appconfig.MercadoPago{})
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(appconfig.MercadoPago{Mock: true})
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})
}

func TestMercadoPagoGateway_Charge(t *testing.T) {
	ctx := context.Background()

	t.Run("mock mode charges the invoice amount", func(t *testing.T) {
		g, _ := NewMercadoPagoGateway(appconfig.MercadoPago{Mock: true})
		res, err := g.Charge(ctx, interfaces.ChargeRequest{
			InvoiceID:   "inv-1",
			InvoiceCode: "FAC-0001",
			Amount:      decimal.RequireFromString("150.50"),
			Payload:     json.RawMessage(`{"transaction_amount":1,"external_reference":"spoofed"}`),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProviderStatus != "approved" || res.ProviderPaymentID == "" {
			t.Fatalf("unexpected result: %+v", res)
		}

		var body map[string]any
		if err := json.Unmarshal(res.ProviderResponse, &body); err != nil {
			t.Fatalf("provider response is not json: %v", err)
		}
		if body["transaction_amount"] != 150.5 {
			t.Fatalf("expected amount from the invoice, got %v", body["transaction_amount"])
		}
		if body["external_reference"] != "inv-1" || body["description"] != "Invoice FAC-0001" {
			t.Fatalf("unexpected enrichment: %+v", body)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		g, _ := NewMercadoPagoGateway(appconfig.MercadoPago{Mock: true})
		_, err := g.Charge(ctx, interfaces.ChargeRequest{InvoiceID: "inv-1", Payload: json.RawMessage(`{`)})
		if !errors.Is(err, interfaces.ErrInvalidChargePayload) {
			t.Fatalf("expected ErrInvalidChargePayload, got %v", err)
		}
	})

	t.Run("real mode requires payment method", func(t *testing.T) {
		g := &MercadoPagoGateway{settings: appconfig.MercadoPago{AccessToken: "APP-1"}}
		_, err := g.Charge(ctx, interfaces.ChargeRequest{InvoiceID: "inv-1", Payload: json.RawMessage(`{"payer":{"email":"a@b.com"}}`)})
		if !errors.Is(err, interfaces.ErrInvalidChargePayload) {
			t.Fatalf("expected ErrInvalidChargePayload, got %v", err)
		}
	})

	t.Run("real mode requires payer outside sandbox", func(t *testing.T) {
		g := &MercadoPagoGateway{settings: appconfig.MercadoPago{AccessToken: "APP-1"}}
		_, err := g.Charge(ctx, interfaces.ChargeRequest{InvoiceID: "inv-1", Payload: json.RawMessage(`{"payment_method_id":"visa"}`)})
		if !errors.Is(err, interfaces.ErrInvalidChargePayload) {
			t.Fatalf("expected ErrInvalidChargePayload, got %v", err)
		}
	})

	t.Run("real mode without client", func(t *testing.T) {
		g := &MercadoPagoGateway{settings: appconfig.MercadoPago{AccessToken: "TEST-1"}}
		_, err := g.Charge(ctx, interfaces.ChargeRequest{InvoiceID: "inv-1", Payload: json.RawMessage(`{"payment_method_id":"visa"}`)})
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPayerDefaults(t *testing.T) {
	t.Run("sandbox fallback email", func(t *testing.T) {
		g := &MercadoPagoGateway{settings: appconfig.MercadoPago{AccessToken: "TEST-123"}}
		body := map[string]any{}
		g.ensurePayerDefaults(body)
		payer := body["payer"].(map[string]any)
		if payer["email"] != sandboxPayerEmail || payer["type"] != "customer" {
			t.Fatalf("unexpected payer defaults: %+v", payer)
		}
	})

	t.Run("sandbox user id mapped to email", func(t *testing.T) {
		g := &MercadoPagoGateway{settings: appconfig.MercadoPago{
			AccessToken:     "TEST-123",
			TestPayerUserID: "42",
			TestPayerEmail:  "buyer@test.com",
		}}
		body := map[string]any{"payer": map[string]any{"id": "42"}}
		g.normalizeSandboxPayerFromUserID(body)
		payer := body["payer"].(map[string]any)
		if payer["email"] != "buyer@test.com" {
			t.Fatalf("expected mapped email, got %+v", payer)
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected payer id to be removed")
		}
	})
}
