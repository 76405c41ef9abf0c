package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuotation_Total(t *testing.T) {
	q := Quotation{Items: []QuotationItem{
		{ProductID: "1", Quantity: 2, Price: decimal.NewFromInt(50)},
		{ProductID: "2", Quantity: 3, Price: decimal.RequireFromString("12.25")},
	}}
	if got := q.Total(); !got.Equal(decimal.RequireFromString("136.75")) {
		t.Fatalf("expected 136.75, got %s", got)
	}
	if got := (Quotation{}).Total(); !got.IsZero() {
		t.Fatalf("expected zero total, got %s", got)
	}
}

func TestInvoiceStatusFor(t *testing.T) {
	total := decimal.NewFromInt(500)
	cases := []struct {
		outstanding string
		want        InvoiceStatus
	}{
		{"500", InvoiceStatusIssued},
		{"300", InvoiceStatusPartiallyPaid},
		{"0.01", InvoiceStatusPartiallyPaid},
		{"0", InvoiceStatusPaid},
	}
	for _, tc := range cases {
		if got := InvoiceStatusFor(total, decimal.RequireFromString(tc.outstanding)); got != tc.want {
			t.Fatalf("outstanding %s: expected %s got %s", tc.outstanding, tc.want, got)
		}
	}
}

func TestComputeBalance(t *testing.T) {
	inv := Invoice{ID: "inv-1", Total: decimal.NewFromInt(500), Status: InvoiceStatusIssued}

	t.Run("fresh invoice owes its total", func(t *testing.T) {
		b := ComputeBalance(inv, nil)
		if !b.Outstanding.Equal(inv.Total) || !b.Paid.IsZero() || b.Status != InvoiceStatusIssued {
			t.Fatalf("unexpected balance: %+v", b)
		}
	})

	t.Run("partial payment", func(t *testing.T) {
		b := ComputeBalance(inv, []Payment{{InvoiceID: "inv-1", Amount: decimal.NewFromInt(200)}})
		if !b.Outstanding.Equal(decimal.NewFromInt(300)) || !b.Paid.Equal(decimal.NewFromInt(200)) {
			t.Fatalf("unexpected balance: %+v", b)
		}
		if b.Status != InvoiceStatusPartiallyPaid {
			t.Fatalf("expected PARTIALLY_PAID, got %s", b.Status)
		}
	})

	t.Run("payments of other invoices are ignored", func(t *testing.T) {
		b := ComputeBalance(inv, []Payment{{InvoiceID: "inv-2", Amount: decimal.NewFromInt(200)}})
		if !b.Paid.IsZero() {
			t.Fatalf("expected nothing paid, got %s", b.Paid)
		}
	})

	t.Run("outstanding never negative", func(t *testing.T) {
		b := ComputeBalance(inv, []Payment{
			{InvoiceID: "inv-1", Amount: decimal.NewFromInt(400)},
			{InvoiceID: "inv-1", Amount: decimal.NewFromInt(400)},
		})
		if !b.Outstanding.IsZero() || b.Status != InvoiceStatusPaid {
			t.Fatalf("unexpected balance: %+v", b)
		}
	})

	t.Run("cancelled wins", func(t *testing.T) {
		cancelled := inv
		cancelled.Status = InvoiceStatusCancelled
		if b := ComputeBalance(cancelled, nil); b.Status != InvoiceStatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", b.Status)
		}
	})
}
