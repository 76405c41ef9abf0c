package interfaces

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
)

// IWorkLogRepository is append-only on purpose: there is no update or delete.

type IWorkLogRepository interface {
	Create(ctx context.Context, l entities.WorkLog) (entities.WorkLog, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkLog, error)
}
