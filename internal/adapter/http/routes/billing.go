package routes

import (
	"mecanica_workflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations     = "/quotations"
	PathInvoices       = "/invoices"
	PathPayments       = "/payments"
	PathPaymentMethods = "/payment-methods"
	PathUsers          = "/users"
)

func addBillingRoutes(rg *gin.RouterGroup, quotations *handlers.QuotationHandler, invoices *handlers.InvoiceHandler) {
	q := rg.Group(PathQuotations)
	{
		q.POST("", quotations.Create)
		q.GET("/:id", quotations.GetByID)
		q.PATCH("/:id/status", quotations.SetStatus)
	}
	rg.GET(PathWorkOrders+"/:id/quotations", quotations.ListByWorkOrder)

	inv := rg.Group(PathInvoices)
	{
		inv.GET("/:id", invoices.GetByID)
		inv.GET("/:id/balance", invoices.GetBalance)
		inv.GET("/:id/payments", invoices.ListPayments)
		inv.PATCH("/:id/cancel", invoices.Cancel)
	}

	rg.POST(PathPayments, invoices.CreatePayment)
	rg.GET(PathPaymentMethods, invoices.ListPaymentMethods)

	users := rg.Group(PathUsers)
	{
		users.GET("/:id/invoices", invoices.ListByUser)
		users.GET("/:id/payments", invoices.ListPaymentsByUser)
	}
}
