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

// QuotationHandler handles HTTP requests for quotations and the client
// authorization they carry.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// Create godoc
// @Summary		Draft a quotation for a work order
// @Tags			Quotations
// @Accept			json
// @Produce		json
// @Param			body	body		request.CreateQuotationRequest	true	"quotation"
// @Success		201		{object}	response.QuotationResponse
// @Failure		400		{object}	pkg.HTTPError
// @Router			/quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	items := make([]usecase.QuotationItemInput, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, usecase.QuotationItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	log.Printf("[quotation][handler] create start work_order_id=%s items=%d", payload.WorkOrderID, len(items))

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateQuotationInput{
		WorkOrderID: payload.WorkOrderID,
		CustomerID:  payload.CustomerID,
		Items:       items,
	})
	if failed(err) {
		log.Printf("[quotation][handler] create failed work_order_id=%s err=%v", payload.WorkOrderID, err)
		writeError(c, mapQuotationError(err))
		return
	}

	res := response.FromQuotation(created)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusCreated, res)
}

// GetByID godoc
// @Summary		Get a quotation
// @Tags			Quotations
// @Produce		json
// @Param			id	path		string	true	"quotation id"
// @Success		200	{object}	response.QuotationResponse
// @Failure		404	{object}	pkg.HTTPError
// @Router			/quotations/{id} [get]
func (h *QuotationHandler) GetByID(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// ListByWorkOrder godoc
// @Summary		List the quotations of a work order
// @Tags			Quotations
// @Produce		json
// @Param			id	path		string	true	"work order id"
// @Success		200	{array}		response.QuotationResponse
// @Router			/work-orders/{id}/quotations [get]
func (h *QuotationHandler) ListByWorkOrder(c *gin.Context) {
	list, err := h.usecase.ListByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuotationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(list))
}

// SetStatus godoc
// @Summary		Send, approve or reject a quotation
// @Description	status_id: 2=SENT 3=APPROVED 4=REJECTED. Approving issues the invoice.
// @Tags			Quotations
// @Accept			json
// @Produce		json
// @Param			id		path		string								true	"quotation id"
// @Param			body	body		request.SetQuotationStatusRequest	true	"decision"
// @Success		200		{object}	response.QuotationResponse
// @Failure		409		{object}	pkg.HTTPError
// @Router			/quotations/{id}/status [patch]
func (h *QuotationHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.SetQuotationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	updated, err := h.usecase.SetStatus(c.Request.Context(), id, status, authorID(c, payload.AuthorID))
	if failed(err) {
		log.Printf("[quotation][handler] set-status failed quotation_id=%s err=%v", id, err)
		writeError(c, mapQuotationError(err))
		return
	}

	res := response.FromQuotation(updated)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusOK, res)
}

func mapQuotationError(err error) *pkg.AppError {
	return mapRuleError(err, "QUOTATION_NOT_FOUND")
}
