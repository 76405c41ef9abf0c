package handlers

import (
	"log"
	request "mecanica_workflow/internal/adapter/http/dto/request"
	response "mecanica_workflow/internal/adapter/http/dto/response"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase"
	"mecanica_workflow/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for the assignment manager.

type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

// Create godoc
// @Summary		Assign an employee (role_id 2) or a specialist (role_id 3) to a work order
// @Tags			Assignments
// @Accept			json
// @Produce		json
// @Param			body	body		request.CreateAssignmentRequest	true	"assignment"
// @Success		201		{object}	response.AssignmentResponse
// @Failure		409		{object}	pkg.HTTPError
// @Router			/assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var payload request.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	role, err := payload.ResolveRole()
	if err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	created, err := h.usecase.Assign(c.Request.Context(), usecase.AssignInput{
		WorkOrderID: payload.WorkOrderID,
		AssigneeID:  payload.AssigneeID,
		Role:        role,
		AssignedAt:  payload.AssignedAt,
	})
	if failed(err) {
		log.Printf("[assignment][handler] create failed work_order_id=%s err=%v", payload.WorkOrderID, err)
		writeError(c, mapAssignmentError(err))
		return
	}

	res := response.FromAssignment(created)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusCreated, res)
}

// Release godoc
// @Summary		Release an assignment
// @Tags			Assignments
// @Produce		json
// @Param			id	path		string	true	"assignment id"
// @Success		200	{object}	response.AssignmentResponse
// @Failure		409	{object}	pkg.HTTPError
// @Router			/assignments/{id}/release [patch]
func (h *AssignmentHandler) Release(c *gin.Context) {
	released, err := h.usecase.Release(c.Request.Context(), c.Param("id"))
	if failed(err) {
		writeError(c, mapAssignmentError(err))
		return
	}

	res := response.FromAssignment(released)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusOK, res)
}

// Reassign godoc
// @Summary		Hand an assignee's slot on a work order over to someone else
// @Tags			Assignments
// @Accept			json
// @Produce		json
// @Param			id		path		string					true	"work order id"
// @Param			body	body		request.ReassignRequest	true	"reassignment"
// @Success		201		{object}	response.AssignmentResponse
// @Failure		409		{object}	pkg.HTTPError
// @Router			/work-orders/{id}/reassign [post]
func (h *AssignmentHandler) Reassign(c *gin.Context) {
	var payload request.ReassignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	created, err := h.usecase.Reassign(c.Request.Context(), usecase.ReassignInput{
		WorkOrderID:    c.Param("id"),
		FromAssigneeID: payload.FromAssigneeID,
		ToAssigneeID:   payload.ToAssigneeID,
		Reason:         payload.Reason,
		AuthorID:       authorID(c, payload.AuthorID),
	})
	if failed(err) {
		writeError(c, mapAssignmentError(err))
		return
	}

	res := response.FromAssignment(created)
	res.AuditWarning = auditWarning(err)
	c.JSON(http.StatusCreated, res)
}

// ListByWorkOrder godoc
// @Summary		List the active assignments of a work order, or all of them with history=true
// @Tags			Assignments
// @Produce		json
// @Param			id		path		string	true	"work order id"
// @Param			history	query		bool	false	"include released assignments"
// @Success		200		{array}		response.AssignmentResponse
// @Router			/work-orders/{id}/assignments [get]
func (h *AssignmentHandler) ListByWorkOrder(c *gin.Context) {
	id := c.Param("id")
	history, _ := strconv.ParseBool(c.DefaultQuery("history", "false"))

	var (
		list []entities.WorkAssignment
		err  error
	)
	if history {
		list, err = h.usecase.ListHistory(c.Request.Context(), id)
	} else {
		list, err = h.usecase.ListActive(c.Request.Context(), id)
	}
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignments(list))
}

// GetWorkload godoc
// @Summary		Number of work orders an assignee is active on
// @Tags			Assignments
// @Produce		json
// @Param			id	path		string	true	"assignee id"
// @Success		200	{object}	response.WorkloadResponse
// @Router			/assignees/{id}/workload [get]
func (h *AssignmentHandler) GetWorkload(c *gin.Context) {
	w, err := h.usecase.GetWorkload(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkload(w))
}

func mapAssignmentError(err error) *pkg.AppError {
	return mapRuleError(err, "ASSIGNMENT_NOT_FOUND")
}
