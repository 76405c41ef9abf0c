package interfaces

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
)

// IWorkOrderRepository abstracts persistence for WorkOrder.
//
// GetByID returns a zero WorkOrder (empty ID) when the order does not exist.
// Update replaces the stored order and fails if it does not exist.

type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Update(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
}
