package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mecanica_workflow/internal/adapter/persistence/memory"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/infrastructure/locking"
	mock_interfaces "mecanica_workflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuotationUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("prices come from the catalog", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)

		q, err := env.quotations.Create(ctx, CreateQuotationInput{
			WorkOrderID: o.ID,
			Items: []QuotationItemInput{
				{ProductID: "1", Quantity: 1},
				{ProductID: "2", Quantity: 2},
				{ProductID: "1", Quantity: 1},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuotationStatusDraft || q.ApproveBy != "cli-1" {
			t.Fatalf("unexpected quotation: %+v", q)
		}
		if len(q.Items) != 2 || q.Items[0].ProductID != "1" || q.Items[0].Quantity != 2 {
			t.Fatalf("expected merged lines, got %+v", q.Items)
		}
		if !q.Total().Equal(money("351")) {
			t.Fatalf("expected total 351, got %s", q.Total())
		}
	})

	t.Run("rules", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		closed := env.openOrder(t, entities.MaintenanceTypeCorrective)
		env.moveOrder(t, closed.ID, entities.WorkOrderStatusCancelled)

		cases := []struct {
			name string
			in   CreateQuotationInput
			want error
		}{
			{"no items", CreateQuotationInput{WorkOrderID: o.ID}, ErrEmptyItems},
			{"zero quantity", CreateQuotationInput{WorkOrderID: o.ID, Items: []QuotationItemInput{{ProductID: "1", Quantity: 0}}}, ErrInvalidQuantity},
			{"unknown product", CreateQuotationInput{WorkOrderID: o.ID, Items: []QuotationItemInput{{ProductID: "nope", Quantity: 1}}}, ErrNotFound},
			{"unknown order", CreateQuotationInput{WorkOrderID: "missing", Items: []QuotationItemInput{{ProductID: "1", Quantity: 1}}}, ErrNotFound},
			{"terminal order", CreateQuotationInput{WorkOrderID: closed.ID, Items: []QuotationItemInput{{ProductID: "1", Quantity: 1}}}, ErrInvalidTransition},
			{"blank product", CreateQuotationInput{WorkOrderID: o.ID, Items: []QuotationItemInput{{ProductID: " ", Quantity: 1}}}, ErrValidation},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := env.quotations.Create(ctx, tc.in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestQuotationUseCase_SetStatus(t *testing.T) {
	ctx := context.Background()

	draft := func(t *testing.T, env *workflowEnv, orderID string) entities.Quotation {
		t.Helper()
		q, err := env.quotations.Create(ctx, CreateQuotationInput{
			WorkOrderID: orderID,
			Items:       []QuotationItemInput{{ProductID: "1", Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("create quotation: %v", err)
		}
		return q
	}

	t.Run("approval issues the invoice", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		q := draft(t, env, o.ID)

		approved, err := env.quotations.SetStatus(ctx, q.ID, entities.QuotationStatusApproved, "cli-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if approved.Status != entities.QuotationStatusApproved || approved.DecidedAt == nil {
			t.Fatalf("unexpected quotation: %+v", approved)
		}

		inv, _ := memory.NewInvoiceRepository(env.store).GetByQuotationID(ctx, q.ID)
		if !inv.Total.Equal(money("100")) || inv.Status != entities.InvoiceStatusIssued || inv.CustomerID != "cli-1" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		if inv.DueDate == nil || inv.Currency != "GTQ" {
			t.Fatalf("expected due date and GTQ currency, got %+v", inv)
		}
		bal, err := env.invoices.GetBalance(ctx, inv.ID)
		if err != nil || !bal.Outstanding.Equal(money("100")) {
			t.Fatalf("expected outstanding 100, got %+v err=%v", bal, err)
		}

		logs, _ := env.workLogs.ListByWorkOrderID(ctx, o.ID)
		if l := findLog(logs, "client approved quotation"); l.LogType != entities.WorkLogTypeCustomerNote {
			t.Fatalf("expected a CUSTOMER_NOTE for the approval, got %+v", l)
		}
	})

	t.Run("repeated approval keeps one invoice", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		q := draft(t, env, o.ID)

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := env.quotations.SetStatus(ctx, q.ID, entities.QuotationStatusApproved, "cli-1"); err != nil {
					t.Errorf("approve: %v", err)
				}
			}()
		}
		wg.Wait()

		invoices, _ := memory.NewInvoiceRepository(env.store).ListByCustomerID(ctx, "cli-1")
		if len(invoices) != 1 {
			t.Fatalf("expected exactly one invoice, got %d", len(invoices))
		}
	})

	t.Run("sent then rejected", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		q := draft(t, env, o.ID)

		sent, err := env.quotations.SetStatus(ctx, q.ID, entities.QuotationStatusSent, "emp-1")
		if err != nil || sent.Status != entities.QuotationStatusSent || sent.DecidedAt != nil {
			t.Fatalf("expected SENT, got %+v err=%v", sent, err)
		}
		if _, err := env.quotations.SetStatus(ctx, q.ID, entities.QuotationStatusSent, "emp-1"); err != nil {
			t.Fatalf("repeating SENT should succeed, got %v", err)
		}

		rejected, err := env.quotations.SetStatus(ctx, q.ID, entities.QuotationStatusRejected, "cli-1")
		if err != nil || rejected.Status != entities.QuotationStatusRejected {
			t.Fatalf("expected REJECTED, got %+v err=%v", rejected, err)
		}
		inv, _ := memory.NewInvoiceRepository(env.store).GetByQuotationID(ctx, q.ID)
		if inv.ID != "" {
			t.Fatalf("a rejected quotation must not be invoiced")
		}

		if _, err := env.quotations.SetStatus(ctx, q.ID, entities.QuotationStatusApproved, "cli-1"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition after rejection, got %v", err)
		}
	})

	t.Run("no way back to draft", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		q := draft(t, env, o.ID)
		if _, err := env.quotations.SetStatus(ctx, q.ID, entities.QuotationStatusDraft, "emp-1"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
		if _, err := env.quotations.SetStatus(ctx, q.ID, "MAYBE", "emp-1"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown quotation", func(t *testing.T) {
		env := newWorkflowEnv(t)
		if _, err := env.quotations.SetStatus(ctx, "missing", entities.QuotationStatusApproved, "cli-1"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestQuotationUseCase_PreventiveAuthorization(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		decision entities.QuotationStatus
		want     entities.WorkOrderStatus
	}{
		{"approved resumes the work", entities.QuotationStatusApproved, entities.WorkOrderStatusInProgress},
		{"declined ends the order", entities.QuotationStatusRejected, entities.WorkOrderStatusNoAuthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newWorkflowEnv(t)
			o := env.openOrder(t, entities.MaintenanceTypeCorrective)
			if _, err := env.orders.ChangeMaintenanceType(ctx, o.ID, entities.MaintenanceTypePreventive, "revision programada de 10k", "emp-1"); err != nil {
				t.Fatalf("to preventive: %v", err)
			}

			q, err := env.quotations.Create(ctx, CreateQuotationInput{WorkOrderID: o.ID, Items: []QuotationItemInput{{ProductID: "500", Quantity: 1}}})
			if err != nil {
				t.Fatalf("create quotation: %v", err)
			}
			if _, err := env.quotations.SetStatus(ctx, q.ID, tc.decision, "cli-1"); err != nil {
				t.Fatalf("decision: %v", err)
			}

			got, _ := env.orders.GetByID(ctx, o.ID)
			if got.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Status)
			}
		})
	}

	t.Run("corrective orders ignore the decision", func(t *testing.T) {
		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		env.issueInvoice(t, o.ID, "1", 1)

		got, _ := env.orders.GetByID(ctx, o.ID)
		if got.Status != entities.WorkOrderStatusCreated {
			t.Fatalf("expected CREATED, got %s", got.Status)
		}
	})
}

func TestQuotationUseCase_StoreFailures(t *testing.T) {
	ctx := context.Background()
	storeDown := errors.New("dynamodb unavailable")

	t.Run("catalog failure stores nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)

		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		catalog.EXPECT().GetByID(gomock.Any(), "1").Return(entities.Product{}, storeDown)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		uc := NewQuotationUseCase(repo, catalog, env.orders, env.invoices, env.workLogs, locking.NewKeyedMutex(time.Second))
		_, err := uc.Create(ctx, CreateQuotationInput{WorkOrderID: o.ID, Items: []QuotationItemInput{{ProductID: "1", Quantity: 1}}})
		if !errors.Is(err, storeDown) {
			t.Fatalf("expected the catalog error, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		catalog := mock_interfaces.NewMockIProductCatalog(ctrl)

		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		catalog.EXPECT().GetByID(gomock.Any(), "404").Return(entities.Product{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		uc := NewQuotationUseCase(repo, catalog, env.orders, env.invoices, env.workLogs, locking.NewKeyedMutex(time.Second))
		_, err := uc.Create(ctx, CreateQuotationInput{WorkOrderID: o.ID, Items: []QuotationItemInput{{ProductID: "404", Quantity: 1}}})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("approval stays undecided when the invoice cannot be issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)

		env := newWorkflowEnv(t)
		o := env.openOrder(t, entities.MaintenanceTypeCorrective)
		locker := locking.NewKeyedMutex(time.Second)
		invoices := NewInvoiceUseCase(invoiceRepo, nil, nil, nil, env.workLogs, locker, InvoiceConfig{})

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{
			ID:          "q-1",
			Code:        "QT-1",
			WorkOrderID: o.ID,
			Status:      entities.QuotationStatusSent,
			Items:       []entities.QuotationItem{{ProductID: "1", Quantity: 1, Price: money("50")}},
		}, nil)
		invoiceRepo.EXPECT().GetByQuotationID(gomock.Any(), "q-1").Return(entities.Invoice{}, storeDown)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		uc := NewQuotationUseCase(repo, memory.NewProductCatalog(env.store), env.orders, invoices, env.workLogs, locker)
		if _, err := uc.SetStatus(ctx, "q-1", entities.QuotationStatusApproved, "cli-1"); !errors.Is(err, storeDown) {
			t.Fatalf("expected the store error, got %v", err)
		}

		logs, _ := env.workLogs.ListByWorkOrderID(ctx, o.ID)
		if l := findLog(logs, "approved quotation"); l.ID != "" {
			t.Fatalf("no approval may be logged when the invoice failed, got %+v", l)
		}
	})
}
