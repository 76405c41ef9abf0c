package response

import (
	"mecanica_workflow/internal/domain/entities"
	"time"
)

type WorkLogResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	AuthorID    string    `json:"autor_id"`
	LogType     string    `json:"log_type"`
	Note        string    `json:"note"`
	Hours       float64   `json:"hours"`
	CreatedAt   time.Time `json:"log_created_at"`
}

func FromWorkLog(l entities.WorkLog) WorkLogResponse {
	return WorkLogResponse{
		ID:          l.ID,
		WorkOrderID: l.WorkOrderID,
		AuthorID:    l.AuthorID,
		LogType:     string(l.LogType),
		Note:        l.Note,
		Hours:       l.Hours,
		CreatedAt:   l.CreatedAt,
	}
}

func FromWorkLogs(list []entities.WorkLog) []WorkLogResponse {
	out := make([]WorkLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromWorkLog(l))
	}
	return out
}
