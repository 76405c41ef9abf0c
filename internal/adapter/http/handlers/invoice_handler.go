package handlers

import (
	"log"
	request "mecanica_workflow/internal/adapter/http/dto/request"
	response "mecanica_workflow/internal/adapter/http/dto/response"
	"mecanica_workflow/internal/usecase"
	"mecanica_workflow/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices, payments and payment
// methods.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary		Record a payment against an invoice
// @Description	Amounts must be positive with at most two decimals and never exceed the outstanding balance. Gateway methods forward mp_payload to Mercado Pago.
// @Tags			Payments
// @Accept			json
// @Produce		json
// @Param			body	body		request.CreatePaymentRequest	true	"payment"
// @Success		201		{object}	response.PaymentResponse
// @Failure		402		{object}	pkg.HTTPError
// @Failure		409		{object}	pkg.HTTPError
// @Router			/payments [post]
func (h *InvoiceHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		writeError(c, invalidRequest(err))
		return
	}
	log.Printf("[payment][handler] create start invoice_id=%s method_id=%s", payload.InvoiceID, payload.MethodID)

	created, err := h.usecase.RecordPayment(c.Request.Context(), usecase.RecordPaymentInput{
		InvoiceID:      payload.InvoiceID,
		MethodID:       payload.MethodID,
		Amount:         payload.Amount,
		Reference:      payload.Reference,
		Notes:          payload.Notes,
		AuthorID:       authorID(c, payload.AuthorID),
		GatewayPayload: payload.ResolveGatewayPayload(),
	})
	if failed(err) {
		log.Printf("[payment][handler] create failed invoice_id=%s err=%v", payload.InvoiceID, err)
		writeError(c, mapInvoiceError(err))
		return
	}
	log.Printf("[payment][handler] create success invoice_id=%s payment_id=%s", payload.InvoiceID, created.ID)

	res := response.FromPayment(created)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusCreated, res)
}

// GetByID godoc
// @Summary		Get an invoice with its derived balance
// @Tags			Invoices
// @Produce		json
// @Param			id	path		string	true	"invoice id"
// @Success		200	{object}	response.InvoiceResponse
// @Failure		404	{object}	pkg.HTTPError
// @Router			/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(view.Invoice, view.Balance))
}

// GetBalance godoc
// @Summary		Outstanding balance of an invoice, derived from its payments
// @Tags			Invoices
// @Produce		json
// @Param			id	path		string	true	"invoice id"
// @Success		200	{object}	response.BalanceResponse
// @Failure		404	{object}	pkg.HTTPError
// @Router			/invoices/{id}/balance [get]
func (h *InvoiceHandler) GetBalance(c *gin.Context) {
	bal, err := h.usecase.GetBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBalance(bal))
}

// ListPayments godoc
// @Summary		Payment ledger of an invoice
// @Tags			Invoices
// @Produce		json
// @Param			id	path		string	true	"invoice id"
// @Success		200	{array}		response.PaymentResponse
// @Router			/invoices/{id}/payments [get]
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// Cancel godoc
// @Summary		Cancel an invoice that has no payments
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Param			id		path		string							true	"invoice id"
// @Param			body	body		request.CancelInvoiceRequest	true	"reason"
// @Success		200		{object}	response.InvoiceResponse
// @Failure		409		{object}	pkg.HTTPError
// @Router			/invoices/{id}/cancel [patch]
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	var payload request.CancelInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	cancelled, err := h.usecase.Cancel(c.Request.Context(), id, payload.Reason, authorID(c, payload.AuthorID))
	if failed(err) {
		log.Printf("[invoice][handler] cancel failed invoice_id=%s err=%v", id, err)
		writeError(c, mapInvoiceError(err))
		return
	}
	view, viewErr := h.usecase.GetByID(c.Request.Context(), cancelled.ID)
	if viewErr != nil {
		writeError(c, mapInvoiceError(viewErr))
		return
	}

	res := response.FromInvoice(view.Invoice, view.Balance)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusOK, res)
}

// ListByUser godoc
// @Summary		Invoices of a customer
// @Tags			Invoices
// @Produce		json
// @Param			id	path		string	true	"user id"
// @Success		200	{array}		response.InvoiceResponse
// @Router			/users/{id}/invoices [get]
func (h *InvoiceHandler) ListByUser(c *gin.Context) {
	views, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	out := make([]response.InvoiceResponse, 0, len(views))
	for _, v := range views {
		out = append(out, response.FromInvoice(v.Invoice, v.Balance))
	}
	c.JSON(http.StatusOK, out)
}

// ListPaymentsByUser godoc
// @Summary		Payments made by a customer across their invoices
// @Tags			Payments
// @Produce		json
// @Param			id	path		string	true	"user id"
// @Success		200	{array}		response.PaymentResponse
// @Router			/users/{id}/payments [get]
func (h *InvoiceHandler) ListPaymentsByUser(c *gin.Context) {
	payments, err := h.usecase.ListPaymentsByCustomerID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// ListPaymentMethods godoc
// @Summary		Available payment methods
// @Tags			Payments
// @Produce		json
// @Success		200	{array}	response.PaymentMethodResponse
// @Router			/payment-methods [get]
func (h *InvoiceHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.usecase.ListPaymentMethods(c.Request.Context())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethods(methods))
}

func mapInvoiceError(err error) *pkg.AppError {
	return mapRuleError(err, "INVOICE_NOT_FOUND")
}
