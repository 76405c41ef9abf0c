package request

import (
	"errors"
	"mecanica_workflow/internal/domain/entities"
	"strings"
)

var (
	ErrUnknownStatusID          = errors.New("unknown status id")
	ErrUnknownMaintenanceTypeID = errors.New("unknown maintenance type id")
	ErrUnknownRoleID            = errors.New("unknown role id")
	ErrUnknownLogType           = errors.New("unknown log type")
)

// The console speaks numeric ids; they are translated here and nowhere else.

func workOrderStatus(id int) (entities.WorkOrderStatus, error) {
	s, ok := entities.WorkOrderStatusFromID(id)
	if !ok {
		return "", ErrUnknownStatusID
	}
	return s, nil
}

func maintenanceType(id int) (entities.MaintenanceType, error) {
	m, ok := entities.MaintenanceTypeFromID(id)
	if !ok {
		return "", ErrUnknownMaintenanceTypeID
	}
	return m, nil
}

func assignmentRole(id int) (entities.AssignmentRole, error) {
	r, ok := entities.AssignmentRoleFromID(id)
	if !ok {
		return "", ErrUnknownRoleID
	}
	return r, nil
}

func quotationStatus(id int) (entities.QuotationStatus, error) {
	s, ok := entities.QuotationStatusFromID(id)
	if !ok {
		return "", ErrUnknownStatusID
	}
	return s, nil
}

func workLogType(name string) (entities.WorkLogType, error) {
	t := entities.WorkLogType(strings.ToUpper(strings.TrimSpace(name)))
	if t == "" {
		return entities.WorkLogTypeNote, nil
	}
	if !t.IsValid() {
		return "", ErrUnknownLogType
	}
	return t, nil
}
