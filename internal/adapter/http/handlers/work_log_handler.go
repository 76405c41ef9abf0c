package handlers

import (
	request "mecanica_workflow/internal/adapter/http/dto/request"
	response "mecanica_workflow/internal/adapter/http/dto/response"
	"mecanica_workflow/internal/usecase"
	"mecanica_workflow/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WorkLogHandler struct {
	usecase usecase.IWorkLogUseCase
}

func NewWorkLogHandler(uc usecase.IWorkLogUseCase) *WorkLogHandler {
	return &WorkLogHandler{usecase: uc}
}

// Create godoc
// @Summary		Append an entry to the work log of a work order
// @Description	log_type: NOTE (default), DIAGNOSIS, PROGRESS, ISSUE, CUSTOMER_NOTE. hours between 0 and 24.
// @Tags			WorkLogs
// @Accept			json
// @Produce		json
// @Param			body	body		request.CreateWorkLogRequest	true	"entry"
// @Success		201		{object}	response.WorkLogResponse
// @Failure		400		{object}	pkg.HTTPError
// @Router			/work-logs [post]
func (h *WorkLogHandler) Create(c *gin.Context) {
	var payload request.CreateWorkLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidRequest(err))
		return
	}
	logType, err := payload.ResolveLogType()
	if err != nil {
		writeError(c, invalidRequest(err))
		return
	}

	created, err := h.usecase.Append(c.Request.Context(), usecase.AppendWorkLogInput{
		WorkOrderID: payload.WorkOrderID,
		AuthorID:    payload.AuthorID,
		LogType:     logType,
		Note:        payload.Note,
		Hours:       payload.Hours,
	})
	if err != nil {
		writeError(c, mapWorkLogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkLog(created))
}

// ListByWorkOrder godoc
// @Summary		Work log of a work order, oldest first
// @Tags			WorkLogs
// @Produce		json
// @Param			id	path		string	true	"work order id"
// @Success		200	{array}		response.WorkLogResponse
// @Router			/work-orders/{id}/work-logs [get]
func (h *WorkLogHandler) ListByWorkOrder(c *gin.Context) {
	logs, err := h.usecase.ListByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkLogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkLogs(logs))
}

func mapWorkLogError(err error) *pkg.AppError {
	return mapRuleError(err, "WORK_ORDER_NOT_FOUND")
}
