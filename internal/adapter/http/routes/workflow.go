package routes

import (
	"mecanica_workflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders  = "/work-orders"
	PathAssignments = "/assignments"
	PathAssignees   = "/assignees"
	PathWorkLogs    = "/work-logs"
)

func addWorkflowRoutes(rg *gin.RouterGroup, workOrders *handlers.WorkOrderHandler, assignments *handlers.AssignmentHandler, workLogs *handlers.WorkLogHandler) {
	orders := rg.Group(PathWorkOrders)
	{
		orders.POST("", workOrders.Open)
		orders.GET("/:id", workOrders.GetByID)
		orders.PATCH("/:id/status", workOrders.ChangeStatus)
		orders.PATCH("/:id/maintenance-type", workOrders.ChangeMaintenanceType)
		orders.POST("/:id/reassign", assignments.Reassign)
		orders.GET("/:id/assignments", assignments.ListByWorkOrder)
		orders.GET("/:id/work-logs", workLogs.ListByWorkOrder)
	}

	assigned := rg.Group(PathAssignments)
	{
		assigned.POST("", assignments.Create)
		assigned.PATCH("/:id/release", assignments.Release)
	}

	rg.GET(PathAssignees+"/:id/workload", assignments.GetWorkload)
	rg.POST(PathWorkLogs, workLogs.Create)
}
