package entities

import (
	"strings"
	"time"
)

// WorkOrderStatus is the canonical lifecycle status of a work order (orden de trabajo).
//
// Internally statuses are named; the numeric ids used by the console only
// exist at the HTTP boundary (see ID / WorkOrderStatusFromID).
type WorkOrderStatus string

const (
	WorkOrderStatusCreated      WorkOrderStatus = "CREATED"
	WorkOrderStatusAssigned     WorkOrderStatus = "ASSIGNED"
	WorkOrderStatusInProgress   WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusEvaluating   WorkOrderStatus = "EVALUATING" // awaiting client authorization
	WorkOrderStatusOnHold       WorkOrderStatus = "ON_HOLD"
	WorkOrderStatusCompleted    WorkOrderStatus = "COMPLETED"
	WorkOrderStatusClosed       WorkOrderStatus = "CLOSED"
	WorkOrderStatusCancelled    WorkOrderStatus = "CANCELLED"
	WorkOrderStatusRejected     WorkOrderStatus = "REJECTED"
	WorkOrderStatusNoAuthorized WorkOrderStatus = "NO_AUTHORIZED"
	WorkOrderStatusFinished     WorkOrderStatus = "FINISHED"
)

var workOrderStatusIDs = map[WorkOrderStatus]int{
	WorkOrderStatusCreated:      1,
	WorkOrderStatusAssigned:     2,
	WorkOrderStatusInProgress:   3,
	WorkOrderStatusEvaluating:   4,
	WorkOrderStatusOnHold:       5,
	WorkOrderStatusCompleted:    6,
	WorkOrderStatusClosed:       7,
	WorkOrderStatusCancelled:    8,
	WorkOrderStatusRejected:     9,
	WorkOrderStatusNoAuthorized: 10,
	WorkOrderStatusFinished:     11,
}

// alternateTerminals are reachable from every non-terminal status.
var alternateTerminals = []WorkOrderStatus{
	WorkOrderStatusCancelled,
	WorkOrderStatusRejected,
	WorkOrderStatusNoAuthorized,
}

// workOrderTransitions lists the client-invoked transitions. ASSIGNED is
// absent on purpose: it is only reached through MarkAssigned.
var workOrderTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	WorkOrderStatusCreated:    {},
	WorkOrderStatusAssigned:   {WorkOrderStatusInProgress, WorkOrderStatusOnHold, WorkOrderStatusEvaluating},
	WorkOrderStatusInProgress: {WorkOrderStatusOnHold, WorkOrderStatusEvaluating, WorkOrderStatusCompleted},
	WorkOrderStatusOnHold:     {WorkOrderStatusInProgress, WorkOrderStatusEvaluating},
	WorkOrderStatusEvaluating: {WorkOrderStatusInProgress, WorkOrderStatusOnHold, WorkOrderStatusFinished},
	WorkOrderStatusCompleted:  {WorkOrderStatusClosed},
}

func (s WorkOrderStatus) IsValid() bool {
	_, ok := workOrderStatusIDs[s]
	return ok
}

func (s WorkOrderStatus) ID() int {
	return workOrderStatusIDs[s]
}

func (s WorkOrderStatus) IsTerminal() bool {
	switch s {
	case WorkOrderStatusClosed, WorkOrderStatusCancelled, WorkOrderStatusRejected,
		WorkOrderStatusNoAuthorized, WorkOrderStatusFinished:
		return true
	}
	return false
}

// CanTransitionTo reports whether a client may move an order from s to next.
func (s WorkOrderStatus) CanTransitionTo(next WorkOrderStatus) bool {
	if !s.IsValid() || !next.IsValid() || s.IsTerminal() || s == next {
		return false
	}
	for _, t := range alternateTerminals {
		if t == next {
			return true
		}
	}
	for _, t := range workOrderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func WorkOrderStatusFromID(id int) (WorkOrderStatus, bool) {
	for s, v := range workOrderStatusIDs {
		if v == id {
			return s, true
		}
	}
	return "", false
}

// MaintenanceType classifies the work: corrective repairs run straight away,
// preventive work needs client authorization first.
type MaintenanceType string

const (
	MaintenanceTypeCorrective MaintenanceType = "CORRECTIVE"
	MaintenanceTypePreventive MaintenanceType = "PREVENTIVE"
)

func (m MaintenanceType) IsValid() bool {
	return m == MaintenanceTypeCorrective || m == MaintenanceTypePreventive
}

func (m MaintenanceType) ID() int {
	switch m {
	case MaintenanceTypeCorrective:
		return 1
	case MaintenanceTypePreventive:
		return 2
	}
	return 0
}

func MaintenanceTypeFromID(id int) (MaintenanceType, bool) {
	switch id {
	case 1:
		return MaintenanceTypeCorrective, true
	case 2:
		return MaintenanceTypePreventive, true
	}
	return "", false
}

// WorkOrder is the unit of vehicle service work.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Orders are never deleted; they end in a terminal status and ClosedAt is
// stamped at that moment.
type WorkOrder struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Status          WorkOrderStatus `json:"status"`
	MaintenanceType MaintenanceType `json:"maintenance_type"`
	Description     string          `json:"description"`
	EstimatedHours  float64         `json:"estimated_hours"`
	VehicleID       string          `json:"vehicle_id,omitempty"`
	CustomerID      string          `json:"customer_id,omitempty"`
	OpenedAt        time.Time       `json:"opened_at"`
	ClosedAt        *time.Time      `json:"closed_at,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MoveTo applies a status change and stamps ClosedAt on terminal statuses.
// It does not validate the transition.
func (w *WorkOrder) MoveTo(next WorkOrderStatus, now time.Time) {
	w.Status = next
	w.UpdatedAt = now
	if next.IsTerminal() {
		closed := now
		w.ClosedAt = &closed
	}
}

// HumanCode derives a short, readable code from a generated id.
func HumanCode(prefix, id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(compact) > 8 {
		compact = compact[:8]
	}
	return prefix + "-" + compact
}
