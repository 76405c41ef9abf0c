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

// WorkOrderHandler handles HTTP requests for the work order state machine.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// Open godoc
// @Summary		Open a work order
// @Tags			WorkOrders
// @Accept			json
// @Produce		json
// @Param			body	body		request.OpenWorkOrderRequest	true	"work order"
// @Success		201		{object}	response.WorkOrderResponse
// @Failure		400		{object}	pkg.HTTPError
// @Router			/work-orders [post]
func (h *WorkOrderHandler) Open(c *gin.Context) {
	var payload request.OpenWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	maintenanceType, err := payload.ResolveMaintenanceType()
	if err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	created, err := h.usecase.Open(c.Request.Context(), usecase.OpenWorkOrderInput{
		Description:     payload.Description,
		MaintenanceType: maintenanceType,
		EstimatedHours:  payload.EstimatedHours,
		VehicleID:       payload.VehicleID,
		CustomerID:      payload.CustomerID,
	})
	if failed(err) {
		log.Printf("[workorder][handler] open failed err=%v", err)
		writeError(c, mapWorkOrderError(err))
		return
	}

	res := response.FromWorkOrder(created)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusCreated, res)
}

// GetByID godoc
// @Summary		Get a work order
// @Tags			WorkOrders
// @Produce		json
// @Param			id	path		string	true	"work order id"
// @Success		200	{object}	response.WorkOrderResponse
// @Failure		404	{object}	pkg.HTTPError
// @Router			/work-orders/{id} [get]
func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(o))
}

// ChangeStatus godoc
// @Summary		Change the status of a work order
// @Description	status_id: 1=CREATED 2=ASSIGNED 3=IN_PROGRESS 4=EVALUATING 5=ON_HOLD 6=COMPLETED 7=CLOSED 8=CANCELLED 9=REJECTED 10=NO_AUTHORIZED 11=FINISHED
// @Tags			WorkOrders
// @Accept			json
// @Produce		json
// @Param			id		path		string						true	"work order id"
// @Param			body	body		request.ChangeStatusRequest	true	"new status"
// @Success		200		{object}	response.WorkOrderResponse
// @Failure		409		{object}	pkg.HTTPError
// @Router			/work-orders/{id}/status [patch]
func (h *WorkOrderHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	log.Printf("[workorder][handler] change-status start work_order_id=%s status=%s", id, status)

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), id, status, payload.Comment, authorID(c, payload.AuthorID))
	if failed(err) {
		log.Printf("[workorder][handler] change-status failed work_order_id=%s err=%v", id, err)
		writeError(c, mapWorkOrderError(err))
		return
	}

	res := response.FromWorkOrder(updated)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusOK, res)
}

// ChangeMaintenanceType godoc
// @Summary		Change the maintenance type of a work order
// @Description	maintenance_type_id: 1=CORRECTIVE 2=PREVENTIVE. Preventive moves the order to EVALUATING.
// @Tags			WorkOrders
// @Accept			json
// @Produce		json
// @Param			id		path		string									true	"work order id"
// @Param			body	body		request.ChangeMaintenanceTypeRequest	true	"new type and reason"
// @Success		200		{object}	response.WorkOrderResponse
// @Failure		409		{object}	pkg.HTTPError
// @Router			/work-orders/{id}/maintenance-type [patch]
func (h *WorkOrderHandler) ChangeMaintenanceType(c *gin.Context) {
	id := c.Param("id")
	var payload request.ChangeMaintenanceTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	maintenanceType, err := payload.ResolveMaintenanceType()
	if err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	updated, err := h.usecase.ChangeMaintenanceType(c.Request.Context(), id, maintenanceType, payload.Reason, authorID(c, payload.AuthorID))
	if failed(err) {
		log.Printf("[workorder][handler] change-maintenance-type failed work_order_id=%s err=%v", id, err)
		writeError(c, mapWorkOrderError(err))
		return
	}

	res := response.FromWorkOrder(updated)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusOK, res)
}

func mapWorkOrderError(err error) *pkg.AppError {
	return mapRuleError(err, "WORK_ORDER_NOT_FOUND")
}
