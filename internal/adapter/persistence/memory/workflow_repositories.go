package memory

import (
	"context"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
	"time"
)

type WorkOrderRepository struct{ store *Store }

func NewWorkOrderRepository(store *Store) *WorkOrderRepository {
	return &WorkOrderRepository{store: store}
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderRepository)(nil)

func (r *WorkOrderRepository) Create(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.workOrders[o.ID]; ok {
		return entities.WorkOrder{}, ErrDuplicateID
	}
	r.store.workOrders[o.ID] = copyWorkOrder(o)
	return copyWorkOrder(o), nil
}

func (r *WorkOrderRepository) GetByID(_ context.Context, id string) (entities.WorkOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	o, ok := r.store.workOrders[id]
	if !ok {
		return entities.WorkOrder{}, nil
	}
	return copyWorkOrder(o), nil
}

func (r *WorkOrderRepository) Update(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.workOrders[o.ID]; !ok {
		return entities.WorkOrder{}, nil
	}
	r.store.workOrders[o.ID] = copyWorkOrder(o)
	return copyWorkOrder(o), nil
}

type WorkAssignmentRepository struct{ store *Store }

func NewWorkAssignmentRepository(store *Store) *WorkAssignmentRepository {
	return &WorkAssignmentRepository{store: store}
}

var _ interfaces.IWorkAssignmentRepository = (*WorkAssignmentRepository)(nil)

func (r *WorkAssignmentRepository) Create(_ context.Context, a entities.WorkAssignment) (entities.WorkAssignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.assignments[a.ID]; ok {
		return entities.WorkAssignment{}, ErrDuplicateID
	}
	r.store.assignments[a.ID] = copyAssignment(a)
	return copyAssignment(a), nil
}

func (r *WorkAssignmentRepository) GetByID(_ context.Context, id string) (entities.WorkAssignment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	a, ok := r.store.assignments[id]
	if !ok {
		return entities.WorkAssignment{}, nil
	}
	return copyAssignment(a), nil
}

func (r *WorkAssignmentRepository) MarkReleased(_ context.Context, id string, releasedAt time.Time) (entities.WorkAssignment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.assignments[id]
	if !ok {
		return entities.WorkAssignment{}, nil
	}
	a.ReleasedAt = &releasedAt
	r.store.assignments[id] = a
	return copyAssignment(a), nil
}

func (r *WorkAssignmentRepository) ListByWorkOrderID(_ context.Context, workOrderID string) ([]entities.WorkAssignment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]entities.WorkAssignment, 0)
	for _, a := range r.store.assignments {
		if a.WorkOrderID == workOrderID {
			out = append(out, copyAssignment(a))
		}
	}
	return out, nil
}

func (r *WorkAssignmentRepository) ListActiveByAssigneeID(_ context.Context, assigneeID string) ([]entities.WorkAssignment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]entities.WorkAssignment, 0)
	for _, a := range r.store.assignments {
		if a.AssigneeID == assigneeID && a.IsActive() {
			out = append(out, copyAssignment(a))
		}
	}
	return out, nil
}

type WorkLogRepository struct{ store *Store }

func NewWorkLogRepository(store *Store) *WorkLogRepository {
	return &WorkLogRepository{store: store}
}

var _ interfaces.IWorkLogRepository = (*WorkLogRepository)(nil)

func (r *WorkLogRepository) Create(_ context.Context, l entities.WorkLog) (entities.WorkLog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.workLogs[l.ID]; ok {
		return entities.WorkLog{}, ErrDuplicateID
	}
	r.store.workLogs[l.ID] = l
	return l, nil
}

func (r *WorkLogRepository) ListByWorkOrderID(_ context.Context, workOrderID string) ([]entities.WorkLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]entities.WorkLog, 0)
	for _, l := range r.store.workLogs {
		if l.WorkOrderID == workOrderID {
			out = append(out, l)
		}
	}
	return out, nil
}
