package response

import (
	"mecanica_workflow/internal/domain/entities"
	"time"
)

type AssignmentResponse struct {
	ID           string     `json:"id"`
	WorkOrderID  string     `json:"work_order_id"`
	AssigneeID   string     `json:"assignee_id"`
	RoleID       int        `json:"role_id"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	AssignedAt   time.Time  `json:"assigned_at"`
	ReleasedAt   *time.Time `json:"released_at,omitempty"`
	AuditWarning string     `json:"audit_warning,omitempty"`
}

func FromAssignment(a entities.WorkAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          a.ID,
		WorkOrderID: a.WorkOrderID,
		AssigneeID:  a.AssigneeID,
		RoleID:      a.Role.ID(),
		Role:        string(a.Role),
		Active:      a.IsActive(),
		AssignedAt:  a.AssignedAt,
		ReleasedAt:  a.ReleasedAt,
	}
}

func FromAssignments(list []entities.WorkAssignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAssignment(a))
	}
	return out
}

type WorkloadResponse struct {
	AssigneeID       string `json:"assignee_id"`
	ActiveOrderCount int    `json:"active_order_count"`
}

func FromWorkload(w entities.Workload) WorkloadResponse {
	return WorkloadResponse{AssigneeID: w.AssigneeID, ActiveOrderCount: w.ActiveOrderCount}
}
