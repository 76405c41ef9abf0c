package request

import "mecanica_workflow/internal/domain/entities"

type CreateWorkLogRequest struct {
	WorkOrderID string  `json:"work_order_id" binding:"required"`
	AuthorID    string  `json:"autor_id" binding:"required"`
	LogType     string  `json:"log_type"`
	Note        string  `json:"note"`
	Hours       float64 `json:"hours"`
}

// ResolveLogType defaults to NOTE.
func (r CreateWorkLogRequest) ResolveLogType() (entities.WorkLogType, error) {
	return workLogType(r.LogType)
}
