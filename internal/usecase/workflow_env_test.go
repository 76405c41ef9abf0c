package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"mecanica_workflow/internal/adapter/persistence/memory"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/infrastructure/locking"

	"github.com/shopspring/decimal"
)

// workflowEnv wires every use case on the in-memory store, the way main does
// with STORAGE_DRIVER=memory.
type workflowEnv struct {
	store       *memory.Store
	workLogs    *WorkLogUseCase
	orders      *WorkOrderUseCase
	assignments *AssignmentUseCase
	invoices    *InvoiceUseCase
	quotations  *QuotationUseCase
}

func newWorkflowEnv(t *testing.T) *workflowEnv {
	t.Helper()

	store := memory.NewStore()
	store.SeedPaymentMethods(memory.DefaultPaymentMethods()...)
	store.SeedProducts(
		entities.Product{ID: "1", Name: "Pastillas de freno", Brand: "Brembo", Category: "Frenos", Unit: "juego", Price: decimal.NewFromInt(50)},
		entities.Product{ID: "2", Name: "Mano de obra", Category: "Servicios", Unit: "hora", Price: decimal.RequireFromString("125.50")},
		entities.Product{ID: "500", Name: "Servicio mayor", Category: "Servicios", Unit: "servicio", Price: decimal.NewFromInt(500)},
	)

	locker := locking.NewKeyedMutex(time.Second)
	workOrderRepo := memory.NewWorkOrderRepository(store)

	env := &workflowEnv{store: store}
	env.workLogs = NewWorkLogUseCase(memory.NewWorkLogRepository(store), workOrderRepo)
	env.orders = NewWorkOrderUseCase(workOrderRepo, env.workLogs, locker)
	env.assignments = NewAssignmentUseCase(memory.NewWorkAssignmentRepository(store), env.orders, env.workLogs, locker)
	env.invoices = NewInvoiceUseCase(
		memory.NewInvoiceRepository(store),
		memory.NewPaymentRepository(store),
		memory.NewPaymentMethodRepository(store),
		nil,
		env.workLogs,
		locker,
		InvoiceConfig{Currency: "GTQ", DueDays: 30},
	)
	env.quotations = NewQuotationUseCase(
		memory.NewQuotationRepository(store),
		memory.NewProductCatalog(store),
		env.orders,
		env.invoices,
		env.workLogs,
		locker,
	)
	return env
}

func (e *workflowEnv) openOrder(t *testing.T, maintenanceType entities.MaintenanceType) entities.WorkOrder {
	t.Helper()
	o, err := e.orders.Open(context.Background(), OpenWorkOrderInput{
		Description:     "Cliente reporta ruido al frenar",
		MaintenanceType: maintenanceType,
		CustomerID:      "cli-1",
		VehicleID:       "veh-1",
	})
	if err != nil {
		t.Fatalf("open work order: %v", err)
	}
	return o
}

func (e *workflowEnv) moveOrder(t *testing.T, id string, statuses ...entities.WorkOrderStatus) {
	t.Helper()
	for _, s := range statuses {
		if _, err := e.orders.ChangeStatus(context.Background(), id, s, "", "emp-1"); err != nil {
			t.Fatalf("change status to %s: %v", s, err)
		}
	}
}

// issueInvoice drafts and approves a quotation worth qty units of product.
func (e *workflowEnv) issueInvoice(t *testing.T, orderID, productID string, qty int) entities.Invoice {
	t.Helper()
	ctx := context.Background()
	q, err := e.quotations.Create(ctx, CreateQuotationInput{
		WorkOrderID: orderID,
		Items:       []QuotationItemInput{{ProductID: productID, Quantity: qty}},
	})
	if err != nil {
		t.Fatalf("create quotation: %v", err)
	}
	if _, err := e.quotations.SetStatus(ctx, q.ID, entities.QuotationStatusApproved, "cli-1"); err != nil {
		t.Fatalf("approve quotation: %v", err)
	}
	inv, err := memory.NewInvoiceRepository(e.store).GetByQuotationID(ctx, q.ID)
	if err != nil || inv.ID == "" {
		t.Fatalf("invoice lookup: %+v err=%v", inv, err)
	}
	return inv
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func findLog(logs []entities.WorkLog, fragment string) entities.WorkLog {
	for _, l := range logs {
		if strings.Contains(l.Note, fragment) {
			return l
		}
	}
	return entities.WorkLog{}
}
