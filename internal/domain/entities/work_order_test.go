package entities

import (
	"testing"
	"time"
)

func TestWorkOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from WorkOrderStatus
		to   WorkOrderStatus
		want bool
	}{
		{WorkOrderStatusCreated, WorkOrderStatusAssigned, false},
		{WorkOrderStatusCreated, WorkOrderStatusInProgress, false},
		{WorkOrderStatusCreated, WorkOrderStatusCancelled, true},
		{WorkOrderStatusAssigned, WorkOrderStatusInProgress, true},
		{WorkOrderStatusAssigned, WorkOrderStatusCompleted, false},
		{WorkOrderStatusInProgress, WorkOrderStatusOnHold, true},
		{WorkOrderStatusInProgress, WorkOrderStatusEvaluating, true},
		{WorkOrderStatusInProgress, WorkOrderStatusCompleted, true},
		{WorkOrderStatusInProgress, WorkOrderStatusInProgress, false},
		{WorkOrderStatusOnHold, WorkOrderStatusInProgress, true},
		{WorkOrderStatusEvaluating, WorkOrderStatusFinished, true},
		{WorkOrderStatusEvaluating, WorkOrderStatusNoAuthorized, true},
		{WorkOrderStatusCompleted, WorkOrderStatusClosed, true},
		{WorkOrderStatusCompleted, WorkOrderStatusRejected, true},
		{WorkOrderStatusClosed, WorkOrderStatusInProgress, false},
		{WorkOrderStatusNoAuthorized, WorkOrderStatusInProgress, false},
		{WorkOrderStatusNoAuthorized, WorkOrderStatusCancelled, false},
		{WorkOrderStatusFinished, WorkOrderStatusClosed, false},
		{WorkOrderStatus("BOGUS"), WorkOrderStatusCancelled, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestWorkOrderStatus_IDRoundTrip(t *testing.T) {
	for s, id := range workOrderStatusIDs {
		got, ok := WorkOrderStatusFromID(id)
		if !ok || got != s {
			t.Fatalf("id %d: expected %s got %s", id, s, got)
		}
	}
	if WorkOrderStatusEvaluating.ID() != 4 {
		t.Fatalf("awaiting authorization must keep wire id 4")
	}
	if _, ok := WorkOrderStatusFromID(99); ok {
		t.Fatalf("expected unknown id to be rejected")
	}
}

func TestWorkOrder_MoveTo(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	o := WorkOrder{Status: WorkOrderStatusInProgress}

	o.MoveTo(WorkOrderStatusOnHold, now)
	if o.ClosedAt != nil {
		t.Fatalf("non-terminal status must not close the order")
	}

	o.MoveTo(WorkOrderStatusCancelled, now)
	if o.ClosedAt == nil || !o.ClosedAt.Equal(now) {
		t.Fatalf("expected closed_at to be stamped, got %v", o.ClosedAt)
	}
	if !o.UpdatedAt.Equal(now) {
		t.Fatalf("expected updated_at to be stamped")
	}
}

func TestMaintenanceTypeAndRoleIDs(t *testing.T) {
	if mt, ok := MaintenanceTypeFromID(2); !ok || mt != MaintenanceTypePreventive {
		t.Fatalf("expected preventive for id 2")
	}
	if _, ok := MaintenanceTypeFromID(0); ok {
		t.Fatalf("expected id 0 to be rejected")
	}
	if r, ok := AssignmentRoleFromID(3); !ok || r != AssignmentRoleSpecialist || r.ID() != 3 {
		t.Fatalf("expected specialist for id 3")
	}
	if _, ok := AssignmentRoleFromID(1); ok {
		t.Fatalf("expected role id 1 to be rejected")
	}
}

func TestHumanCode(t *testing.T) {
	if got := HumanCode("OT", "1a2b3c4d-5e6f-7a8b-9c0d-112233445566"); got != "OT-1A2B3C4D" {
		t.Fatalf("unexpected code %q", got)
	}
	if got := HumanCode("QT", "ab"); got != "QT-AB" {
		t.Fatalf("unexpected code %q", got)
	}
}
