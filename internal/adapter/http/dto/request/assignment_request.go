package request

import (
	"mecanica_workflow/internal/domain/entities"
	"time"
)

type CreateAssignmentRequest struct {
	WorkOrderID string     `json:"work_order_id" binding:"required"`
	AssigneeID  string     `json:"assignee_id" binding:"required"`
	RoleID      int        `json:"role_id" binding:"required"`
	AssignedAt  *time.Time `json:"assigned_at"`
}

func (r CreateAssignmentRequest) ResolveRole() (entities.AssignmentRole, error) {
	return assignmentRole(r.RoleID)
}

type ReassignRequest struct {
	FromAssigneeID string `json:"from_assignee_id" binding:"required"`
	ToAssigneeID   string `json:"to_assignee_id" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
	AuthorID       string `json:"author_id"`
}
