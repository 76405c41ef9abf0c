package interfaces

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
	"time"
)

// IWorkAssignmentRepository abstracts persistence for WorkAssignment.
//
// The assignment manager must be able to:
//   - create an assignment and stamp its release (rows are never deleted)
//   - list every assignment of an order (history and active view)
//   - list the active assignments of an assignee (workload)

type IWorkAssignmentRepository interface {
	Create(ctx context.Context, a entities.WorkAssignment) (entities.WorkAssignment, error)
	GetByID(ctx context.Context, id string) (entities.WorkAssignment, error)
	MarkReleased(ctx context.Context, id string, releasedAt time.Time) (entities.WorkAssignment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkAssignment, error)
	ListActiveByAssigneeID(ctx context.Context, assigneeID string) ([]entities.WorkAssignment, error)
}
