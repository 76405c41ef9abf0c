package response

import (
	"mecanica_workflow/internal/domain/entities"
	"time"
)

type WorkOrderResponse struct {
	ID                string     `json:"id"`
	Code              string     `json:"code"`
	StatusID          int        `json:"status_id"`
	Status            string     `json:"status"`
	MaintenanceTypeID int        `json:"maintenance_type_id"`
	MaintenanceType   string     `json:"maintenance_type"`
	Description       string     `json:"description"`
	EstimatedHours    float64    `json:"estimated_hours"`
	VehicleID         string     `json:"vehicle_id,omitempty"`
	CustomerID        string     `json:"customer_id,omitempty"`
	OpenedAt          time.Time  `json:"opened_at"`
	ClosedAt          *time.Time `json:"closed_at,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
	AuditWarning      string     `json:"audit_warning,omitempty"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                o.ID,
		Code:              o.Code,
		StatusID:          o.Status.ID(),
		Status:            string(o.Status),
		MaintenanceTypeID: o.MaintenanceType.ID(),
		MaintenanceType:   string(o.MaintenanceType),
		Description:       o.Description,
		EstimatedHours:    o.EstimatedHours,
		VehicleID:         o.VehicleID,
		CustomerID:        o.CustomerID,
		OpenedAt:          o.OpenedAt,
		ClosedAt:          o.ClosedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
