package routes

import (
	"log"
	"mecanica_workflow/internal/adapter/http/handlers"
	"mecanica_workflow/internal/adapter/persistence/memory"
	"mecanica_workflow/internal/adapter/persistence/repository"
	"mecanica_workflow/internal/infrastructure/config"
	"mecanica_workflow/internal/infrastructure/database"
	"mecanica_workflow/internal/infrastructure/locking"
	"mecanica_workflow/internal/infrastructure/payments"
	"mecanica_workflow/internal/usecase"
	"mecanica_workflow/internal/usecase/interfaces"
)

type repositories struct {
	workOrders     interfaces.IWorkOrderRepository
	assignments    interfaces.IWorkAssignmentRepository
	workLogs       interfaces.IWorkLogRepository
	quotations     interfaces.IQuotationRepository
	invoices       interfaces.IInvoiceRepository
	payments       interfaces.IPaymentRepository
	paymentMethods interfaces.IPaymentMethodRepository
	catalog        interfaces.IProductCatalog
}

func newRepositories(cfg config.Config) repositories {
	if cfg.StorageDriver == config.StorageMemory {
		log.Printf("[routes] using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		store.SeedPaymentMethods(memory.DefaultPaymentMethods()...)
		store.SeedProducts(memory.DefaultProducts()...)
		return repositories{
			workOrders:     memory.NewWorkOrderRepository(store),
			assignments:    memory.NewWorkAssignmentRepository(store),
			workLogs:       memory.NewWorkLogRepository(store),
			quotations:     memory.NewQuotationRepository(store),
			invoices:       memory.NewInvoiceRepository(store),
			payments:       memory.NewPaymentRepository(store),
			paymentMethods: memory.NewPaymentMethodRepository(store),
			catalog:        memory.NewProductCatalog(store),
		}
	}

	ddb := database.ConnectDynamoDB(cfg.DynamoDB)
	t := cfg.DynamoDB.Tables
	return repositories{
		workOrders:     repository.NewWorkOrderDynamoRepository(ddb, t.WorkOrders),
		assignments:    repository.NewWorkAssignmentDynamoRepository(ddb, t.Assignments),
		workLogs:       repository.NewWorkLogDynamoRepository(ddb, t.WorkLogs),
		quotations:     repository.NewQuotationDynamoRepository(ddb, t.Quotations),
		invoices:       repository.NewInvoiceDynamoRepository(ddb, t.Invoices),
		payments:       repository.NewPaymentDynamoRepository(ddb, t.Payments),
		paymentMethods: repository.NewPaymentMethodDynamoRepository(ddb, t.PaymentMethods),
		catalog:        repository.NewProductCatalogDynamo(ddb, t.Products),
	}
}

func newLocker(cfg config.Config) interfaces.ILocker {
	if rdb := database.ConnectRedis(cfg.Redis); rdb != nil {
		return locking.NewRedisLocker(rdb, cfg.Locks.TTL, cfg.Locks.WaitTimeout)
	}
	log.Printf("[routes] using in-process locks, run a single replica")
	return locking.NewKeyedMutex(cfg.Locks.WaitTimeout)
}

func newPaymentGateway(cfg config.Config) interfaces.IPaymentGateway {
	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gateway
}

func buildHandlers(cfg config.Config) Handlers {
	repos := newRepositories(cfg)
	locker := newLocker(cfg)

	workLogUseCase := usecase.NewWorkLogUseCase(repos.workLogs, repos.workOrders)
	workOrderUseCase := usecase.NewWorkOrderUseCase(repos.workOrders, workLogUseCase, locker)
	assignmentUseCase := usecase.NewAssignmentUseCase(repos.assignments, workOrderUseCase, workLogUseCase, locker)
	invoiceUseCase := usecase.NewInvoiceUseCase(
		repos.invoices,
		repos.payments,
		repos.paymentMethods,
		newPaymentGateway(cfg),
		workLogUseCase,
		locker,
		usecase.InvoiceConfig{Currency: cfg.Invoice.Currency, DueDays: cfg.Invoice.DueDays},
	)
	quotationUseCase := usecase.NewQuotationUseCase(repos.quotations, repos.catalog, workOrderUseCase, invoiceUseCase, workLogUseCase, locker)

	return Handlers{
		WorkOrders:  handlers.NewWorkOrderHandler(workOrderUseCase),
		Assignments: handlers.NewAssignmentHandler(assignmentUseCase),
		Quotations:  handlers.NewQuotationHandler(quotationUseCase),
		Invoices:    handlers.NewInvoiceHandler(invoiceUseCase),
		WorkLogs:    handlers.NewWorkLogHandler(workLogUseCase),
	}
}
