package entities

import "time"

// AssignmentRole is the slot a person occupies on a work order.
type AssignmentRole string

const (
	AssignmentRoleEmployee   AssignmentRole = "EMPLOYEE"
	AssignmentRoleSpecialist AssignmentRole = "SPECIALIST"
)

func (r AssignmentRole) IsValid() bool {
	return r == AssignmentRoleEmployee || r == AssignmentRoleSpecialist
}

// ID returns the role id used by the user directory (2 = Empleado, 3 = Especialista).
func (r AssignmentRole) ID() int {
	switch r {
	case AssignmentRoleEmployee:
		return 2
	case AssignmentRoleSpecialist:
		return 3
	}
	return 0
}

func AssignmentRoleFromID(id int) (AssignmentRole, bool) {
	switch id {
	case 2:
		return AssignmentRoleEmployee, true
	case 3:
		return AssignmentRoleSpecialist, true
	}
	return "", false
}

// WorkAssignment binds an assignee to a work order.
//
// Storage model (DynamoDB):
//   - PK: work_order_id, SK: id
//   - GSI1 (assignee_id-index): assignee_id
//
// Rows are never deleted: releasing an assignment stamps ReleasedAt so the
// history of who touched the order is kept.
type WorkAssignment struct {
	ID          string         `json:"id"`
	WorkOrderID string         `json:"work_order_id"`
	AssigneeID  string         `json:"assignee_id"`
	Role        AssignmentRole `json:"role"`
	AssignedAt  time.Time      `json:"assigned_at"`
	ReleasedAt  *time.Time     `json:"released_at,omitempty"`
}

func (a WorkAssignment) IsActive() bool {
	return a.ReleasedAt == nil
}

// Workload is the advisory count of orders an assignee is active on.
type Workload struct {
	AssigneeID       string `json:"assignee_id"`
	ActiveOrderCount int    `json:"active_order_count"`
}
