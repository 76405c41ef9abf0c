package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"mecanica_workflow/internal/adapter/persistence/memory"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/infrastructure/locking"
	"mecanica_workflow/internal/usecase/interfaces"
	mock_interfaces "mecanica_workflow/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_RecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("partial then full payment", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "500", 1)

		if _, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "1", Amount: money("200"), AuthorID: "emp-1"}); err != nil {
			t.Fatalf("first payment: %v", err)
		}
		bal, err := env.invoices.GetBalance(ctx, inv.ID)
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		want := entities.Balance{Total: money("500"), Paid: money("200"), Outstanding: money("300"), Status: entities.InvoiceStatusPartiallyPaid}
		if !bal.Total.Equal(want.Total) || !bal.Paid.Equal(want.Paid) || !bal.Outstanding.Equal(want.Outstanding) || bal.Status != want.Status {
			t.Fatalf("expected %+v, got %+v", want, bal)
		}

		if _, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "2", Amount: money("300"), AuthorID: "emp-1"}); err != nil {
			t.Fatalf("second payment: %v", err)
		}
		view, _ := env.invoices.GetByID(ctx, inv.ID)
		if view.Balance.Status != entities.InvoiceStatusPaid || !view.Balance.Outstanding.IsZero() {
			t.Fatalf("expected PAID with nothing outstanding, got %+v", view.Balance)
		}
		if view.Invoice.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected the persisted status to follow, got %s", view.Invoice.Status)
		}

		_, err = env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "1", Amount: money("0.01")})
		if !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected ErrInvoiceAlreadyPaid, got %v", err)
		}

		logs, _ := env.workLogs.ListByWorkOrderID(ctx, o.ID)
		if l := findLog(logs, "payment of 300.00 GTQ"); l.LogType != entities.WorkLogTypeProgress || l.AuthorID != "emp-1" {
			t.Fatalf("expected a PROGRESS entry for the payment, got %+v", l)
		}
	})

	t.Run("over payment leaves the ledger untouched", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 2)

		_, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "1", Amount: money("100.01")})
		if !errors.Is(err, ErrOverPayment) {
			t.Fatalf("expected ErrOverPayment, got %v", err)
		}
		payments, _ := env.invoices.ListPayments(ctx, inv.ID)
		bal, _ := env.invoices.GetBalance(ctx, inv.ID)
		if len(payments) != 0 || !bal.Outstanding.Equal(money("100")) || bal.Status != entities.InvoiceStatusIssued {
			t.Fatalf("expected untouched invoice, got payments=%d balance=%+v", len(payments), bal)
		}
	})

	t.Run("invalid amounts", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 2)

		for _, amount := range []string{"0", "-5", "10.005"} {
			t.Run(amount, func(t *testing.T) {
				_, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "1", Amount: money(amount)})
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
			})
		}
	})

	t.Run("unknown invoice and method", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 1)

		if _, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: "missing", MethodID: "1", Amount: money("1")}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for the invoice, got %v", err)
		}
		if _, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "99", Amount: money("1")}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for the method, got %v", err)
		}
	})

	t.Run("cancelled invoice", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 1)
		if _, err := env.invoices.Cancel(ctx, inv.ID, "factura emitida por error", "emp-1"); err != nil {
			t.Fatalf("cancel: %v", err)
		}

		_, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "1", Amount: money("1")})
		if !errors.Is(err, ErrInvoiceVoided) {
			t.Fatalf("expected ErrInvoiceVoided, got %v", err)
		}
	})

	t.Run("gateway method without a gateway", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 1)

		_, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "4", Amount: money("10")})
		if !errors.Is(err, errGatewayNotConfigured) {
			t.Fatalf("expected errGatewayNotConfigured, got %v", err)
		}
	})
}

func TestInvoiceUseCase_BalanceMatchesLedger(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t)
	o := env.openOrder(t, entities.MaintenanceTypeCorrective)
	inv := env.issueInvoice(t, o.ID, "2", 4) // 502.00

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 40; i++ {
		cents := rng.Int63n(9000) + 1
		amount := decimal.New(cents, -2)
		_, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "1", Amount: amount})
		if err != nil && !errors.Is(err, ErrOverPayment) && !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("payment %d (%s): %v", i, amount, err)
		}

		payments, _ := env.invoices.ListPayments(ctx, inv.ID)
		sum := decimal.Zero
		for _, p := range payments {
			sum = sum.Add(p.Amount)
		}
		bal, _ := env.invoices.GetBalance(ctx, inv.ID)
		if !bal.Paid.Equal(sum) || !bal.Outstanding.Equal(bal.Total.Sub(sum)) || bal.Outstanding.Sign() < 0 {
			t.Fatalf("balance %+v does not match ledger sum %s", bal, sum)
		}
		if bal.Status != entities.InvoiceStatusFor(bal.Total, bal.Outstanding) {
			t.Fatalf("status %s does not follow outstanding %s", bal.Status, bal.Outstanding)
		}
	}
}

func TestInvoiceUseCase_ConcurrentPaymentsNeverOverpay(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t)
	o := env.openOrder(t, entities.MaintenanceTypeCorrective)
	inv := env.issueInvoice(t, o.ID, "1", 2) // 100.00

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "1", Amount: money("30")})
			switch {
			case err == nil:
				mu.Lock()
				accepted++
				mu.Unlock()
			case errors.Is(err, ErrOverPayment), errors.Is(err, ErrInvoiceAlreadyPaid):
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if accepted != 3 {
		t.Fatalf("expected 3 accepted payments of 30 on a 100 invoice, got %d", accepted)
	}
	bal, _ := env.invoices.GetBalance(ctx, inv.ID)
	if !bal.Outstanding.Equal(money("10")) || bal.Status != entities.InvoiceStatusPartiallyPaid {
		t.Fatalf("unexpected balance %+v", bal)
	}
}

func TestInvoiceUseCase_Gateway(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, gateway interfaces.IPaymentGateway) (*workflowEnv, *InvoiceUseCase, entities.Invoice) {
		t.Helper()
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 2)
		uc := NewInvoiceUseCase(
			memory.NewInvoiceRepository(env.store),
			memory.NewPaymentRepository(env.store),
			memory.NewPaymentMethodRepository(env.store),
			gateway,
			env.workLogs,
			locking.NewKeyedMutex(time.Second),
			InvoiceConfig{},
		)
		return env, uc, inv
	}

	t.Run("approved charge stores the provider data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		_, uc, inv := setup(t, gw)

		payload := json.RawMessage(`{"payment_method_id":"visa","token":"tok"}`)
		gw.EXPECT().
			Charge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
				if req.InvoiceID != inv.ID || !req.Amount.Equal(money("40")) || string(req.Payload) != string(payload) {
					return interfaces.ChargeResult{}, fmt.Errorf("unexpected request %+v", req)
				}
				return interfaces.ChargeResult{
					ProviderPaymentID: "123456",
					ProviderStatus:    "approved",
					ProviderResponse:  json.RawMessage(`{"id":123456,"status":"approved"}`),
				}, nil
			})

		p, err := uc.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "4", Amount: money("40"), GatewayPayload: payload})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ProviderPaymentID != "123456" || p.Reference != "123456" || len(p.ProviderPayloadRaw) == 0 {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("declined charge is not recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		_, uc, inv := setup(t, gw)

		gw.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(interfaces.ChargeResult{ProviderPaymentID: "1", ProviderStatus: "rejected"}, nil)

		_, err := uc.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "4", Amount: money("40")})
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
		payments, _ := uc.ListPayments(ctx, inv.ID)
		if len(payments) != 0 {
			t.Fatalf("expected empty ledger, got %d payments", len(payments))
		}
	})

	t.Run("provider errors are classified", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
		}{
			{"invalid payload", fmt.Errorf("%w: payment_method_id is required", interfaces.ErrInvalidChargePayload), ErrValidation},
			{"customer not found", errors.New(`{"message":"Customer not found","code":2002}`), ErrPaymentDeclined},
			{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentDeclined},
			{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentDeclined},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
				_, uc, inv := setup(t, gw)

				gw.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(interfaces.ChargeResult{}, tc.err)

				if _, err := uc.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "4", Amount: money("40")}); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("charged payment the ledger rejects is logged for reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)

		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 2)
		uc := NewInvoiceUseCase(
			memory.NewInvoiceRepository(env.store),
			payments,
			memory.NewPaymentMethodRepository(env.store),
			gw,
			env.workLogs,
			locking.NewKeyedMutex(time.Second),
			InvoiceConfig{},
		)

		storeDown := errors.New("dynamodb unavailable")
		payments.EXPECT().ListByInvoiceID(gomock.Any(), inv.ID).Return(nil, nil)
		gw.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(interfaces.ChargeResult{ProviderPaymentID: "987654", ProviderStatus: "approved"}, nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, storeDown)

		var buf bytes.Buffer
		log.SetOutput(&buf)
		defer log.SetOutput(os.Stderr)

		_, err := uc.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "4", Amount: money("40")})
		if !errors.Is(err, storeDown) {
			t.Fatalf("expected the store error, got %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "provider_payment_id=987654") || !strings.Contains(out, "invoice_id="+inv.ID) {
			t.Fatalf("expected a reconciliation line with the provider payment id, got:\n%s", out)
		}
	})

	t.Run("unknown method never reaches the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		methods := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)

		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 2)
		uc := NewInvoiceUseCase(
			memory.NewInvoiceRepository(env.store),
			memory.NewPaymentRepository(env.store),
			methods,
			gw,
			env.workLogs,
			locking.NewKeyedMutex(time.Second),
			InvoiceConfig{},
		)

		methods.EXPECT().GetByID(gomock.Any(), "99").Return(entities.PaymentMethod{}, nil)
		gw.EXPECT().Charge(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "99", Amount: money("40")})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("over payment never reaches the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		_, uc, inv := setup(t, gw)

		gw.EXPECT().Charge(gomock.Any(), gomock.Any()).Times(0)

		if _, err := uc.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "4", Amount: money("500")}); !errors.Is(err, ErrOverPayment) {
			t.Fatalf("expected ErrOverPayment, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("unpaid invoice", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 1)

		got, err := env.invoices.Cancel(ctx, inv.ID, "factura emitida por error", "emp-1")
		if err != nil || got.Status != entities.InvoiceStatusCancelled {
			t.Fatalf("expected cancelled invoice, got %+v err=%v", got, err)
		}
		bal, _ := env.invoices.GetBalance(ctx, inv.ID)
		if bal.Status != entities.InvoiceStatusCancelled {
			t.Fatalf("expected cancelled balance, got %s", bal.Status)
		}
		if _, err := env.invoices.Cancel(ctx, inv.ID, "factura emitida por error", "emp-1"); err != nil {
			t.Fatalf("repeated cancel should succeed, got %v", err)
		}
	})

	t.Run("invoice with payments", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		inv := env.issueInvoice(t, o.ID, "1", 1)
		if _, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "1", Amount: money("10")}); err != nil {
			t.Fatalf("payment: %v", err)
		}

		if _, err := env.invoices.Cancel(ctx, inv.ID, "factura emitida por error", "emp-1"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("short reason", func(t *testing.T) {
		env := newWorkflowEnv(t)
		if _, err := env.invoices.Cancel(ctx, "any", "error", "emp-1"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Listings(t *testing.T) {
	ctx := context.Background()
	env := newWorkflowEnv(t)
	o := env.openOrder(t, entities.MaintenanceTypeCorrective)
	first := env.issueInvoice(t, o.ID, "1", 1)
	second := env.issueInvoice(t, o.ID, "2", 1)

	if _, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: first.ID, MethodID: "1", Amount: money("50")}); err != nil {
		t.Fatalf("payment: %v", err)
	}
	if _, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: second.ID, MethodID: "3", Amount: money("25.50")}); err != nil {
		t.Fatalf("payment: %v", err)
	}

	views, err := env.invoices.ListByCustomerID(ctx, "cli-1")
	if err != nil || len(views) != 2 {
		t.Fatalf("expected 2 invoices, got %d err=%v", len(views), err)
	}
	for _, v := range views {
		if v.Invoice.ID == first.ID && v.Balance.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected first invoice PAID, got %s", v.Balance.Status)
		}
		if v.Invoice.ID == second.ID && !v.Balance.Outstanding.Equal(money("100")) {
			t.Fatalf("expected 100 outstanding on second invoice, got %s", v.Balance.Outstanding)
		}
	}

	payments, err := env.invoices.ListPaymentsByCustomerID(ctx, "cli-1")
	if err != nil || len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d err=%v", len(payments), err)
	}

	methods, err := env.invoices.ListPaymentMethods(ctx)
	if err != nil || len(methods) != 4 {
		t.Fatalf("expected the 4 seeded methods, got %d err=%v", len(methods), err)
	}

	if _, err := env.invoices.ListByCustomerID(ctx, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestInvoiceUseCase_IssueFromQuotation(t *testing.T) {
	ctx := context.Background()

	t.Run("zero total starts paid", func(t *testing.T) {
		env := newWorkflowEnv(t)
		env.store.SeedProducts(entities.Product{ID: "diag", Name: "Diagnostico", Category: "Servicios", Unit: "servicio", Price: decimal.Zero})
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)

		inv := env.issueInvoice(t, o.ID, "diag", 1)
		if inv.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected PAID, got %s", inv.Status)
		}
		view, err := env.invoices.GetByID(ctx, inv.ID)
		if err != nil || view.Balance.Status != inv.Status {
			t.Fatalf("stored status %s disagrees with derived %+v err=%v", inv.Status, view.Balance, err)
		}
		if _, err := env.invoices.RecordPayment(ctx, RecordPaymentInput{InvoiceID: inv.ID, MethodID: "1", Amount: money("1")}); !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected ErrInvoiceAlreadyPaid, got %v", err)
		}
	})

	t.Run("lost reservation returns the winning invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)

		q := entities.Quotation{
			ID:          "q-1",
			Code:        "QT-1",
			WorkOrderID: "wo-1",
			Status:      entities.QuotationStatusApproved,
			Items:       []entities.QuotationItem{{ProductID: "1", Quantity: 1, Price: money("50")}},
		}
		winner := entities.Invoice{ID: "inv-winner", QuotationID: "q-1", Status: entities.InvoiceStatusIssued, Total: money("50")}
		gomock.InOrder(
			repo.EXPECT().GetByQuotationID(gomock.Any(), "q-1").Return(entities.Invoice{}, nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, interfaces.ErrQuotationAlreadyInvoiced),
			repo.EXPECT().GetByQuotationID(gomock.Any(), "q-1").Return(winner, nil),
		)

		uc := NewInvoiceUseCase(repo, nil, nil, nil, nil, locking.NewKeyedMutex(time.Second), InvoiceConfig{})
		inv, err := uc.IssueFromQuotation(ctx, q)
		if err != nil || inv.ID != "inv-winner" {
			t.Fatalf("expected the winning invoice, got %+v err=%v", inv, err)
		}
	})

	t.Run("reservation without a readable invoice is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)

		q := entities.Quotation{ID: "q-2", WorkOrderID: "wo-1", Items: []entities.QuotationItem{{ProductID: "1", Quantity: 1, Price: money("50")}}}
		repo.EXPECT().GetByQuotationID(gomock.Any(), "q-2").Return(entities.Invoice{}, nil).Times(2)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, interfaces.ErrQuotationAlreadyInvoiced)

		uc := NewInvoiceUseCase(repo, nil, nil, nil, nil, locking.NewKeyedMutex(time.Second), InvoiceConfig{})
		if _, err := uc.IssueFromQuotation(ctx, q); !errors.Is(err, interfaces.ErrQuotationAlreadyInvoiced) {
			t.Fatalf("expected ErrQuotationAlreadyInvoiced, got %v", err)
		}
	})
}
