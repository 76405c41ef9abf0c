package request

import "mecanica_workflow/internal/domain/entities"

type OpenWorkOrderRequest struct {
	Description       string  `json:"description" binding:"required"`
	MaintenanceTypeID int     `json:"maintenance_type_id"`
	EstimatedHours    float64 `json:"estimated_hours"`
	VehicleID         string  `json:"vehicle_id"`
	CustomerID        string  `json:"customer_id"`
}

// ResolveMaintenanceType returns "" when the id is omitted so the use case
// applies its default.
func (r OpenWorkOrderRequest) ResolveMaintenanceType() (entities.MaintenanceType, error) {
	if r.MaintenanceTypeID == 0 {
		return "", nil
	}
	return maintenanceType(r.MaintenanceTypeID)
}

type ChangeStatusRequest struct {
	StatusID int    `json:"status_id" binding:"required"`
	Comment  string `json:"comment"`
	AuthorID string `json:"author_id"`
}

func (r ChangeStatusRequest) ResolveStatus() (entities.WorkOrderStatus, error) {
	return workOrderStatus(r.StatusID)
}

type ChangeMaintenanceTypeRequest struct {
	MaintenanceTypeID int    `json:"maintenance_type_id" binding:"required"`
	Reason            string `json:"reason" binding:"required"`
	AuthorID          string `json:"author_id"`
}

func (r ChangeMaintenanceTypeRequest) ResolveMaintenanceType() (entities.MaintenanceType, error) {
	return maintenanceType(r.MaintenanceTypeID)
}
