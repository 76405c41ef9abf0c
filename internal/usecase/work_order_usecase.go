package usecase

import (
	"context"
	"fmt"
	"log"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	minReasonLength  = 10
	maxCommentLength = 1500
)

type OpenWorkOrderInput struct {
	Description     string
	MaintenanceType entities.MaintenanceType
	EstimatedHours  float64
	VehicleID       string
	CustomerID      string
}

// IWorkOrderUseCase is the work order state machine.
//
//   - ChangeStatus validates client-invoked transitions against the table in entities.
//   - MarkAssigned is the derived CREATED -> ASSIGNED transition run by Assign.
//   - ApplyAuthorizationOutcome lets the quotation workflow report the client decision.

type IWorkOrderUseCase interface {
	Open(ctx context.Context, in OpenWorkOrderInput) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ChangeStatus(ctx context.Context, id string, status entities.WorkOrderStatus, comment, authorID string) (entities.WorkOrder, error)
	ChangeMaintenanceType(ctx context.Context, id string, maintenanceType entities.MaintenanceType, reason, authorID string) (entities.WorkOrder, error)
	MarkAssigned(ctx context.Context, id, assigneeID string) (entities.WorkOrder, error)
	ApplyAuthorizationOutcome(ctx context.Context, id string, approved bool, authorID string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo     interfaces.IWorkOrderRepository
	workLogs IWorkLogUseCase
	locker   interfaces.ILocker
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, workLogs IWorkLogUseCase, locker interfaces.ILocker) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, workLogs: workLogs, locker: locker}
}

func workOrderLockKey(id string) string {
	return "work_order:" + id
}

func (u *WorkOrderUseCase) Open(ctx context.Context, in OpenWorkOrderInput) (entities.WorkOrder, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "description is required")
	}
	if in.EstimatedHours < 0 {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "estimated hours cannot be negative")
	}
	if in.MaintenanceType == "" {
		in.MaintenanceType = entities.MaintenanceTypeCorrective
	}
	if !in.MaintenanceType.IsValid() {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "unknown maintenance type %q", in.MaintenanceType)
	}

	// Preventive work waits for client sign-off before anyone starts on it.
	status := entities.WorkOrderStatusCreated
	if in.MaintenanceType == entities.MaintenanceTypePreventive {
		status = entities.WorkOrderStatusEvaluating
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	o := entities.WorkOrder{
		ID:              id,
		Code:            entities.HumanCode("OT", id),
		Status:          status,
		MaintenanceType: in.MaintenanceType,
		Description:     description,
		EstimatedHours:  in.EstimatedHours,
		VehicleID:       strings.TrimSpace(in.VehicleID),
		CustomerID:      strings.TrimSpace(in.CustomerID),
		OpenedAt:        now,
		UpdatedAt:       now,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[workorder][usecase] open failed err=%v", err)
		return entities.WorkOrder{}, err
	}
	log.Printf("[workorder][usecase] opened work_order_id=%s code=%s type=%s status=%s", created.ID, created.Code, created.MaintenanceType, created.Status)

	note := fmt.Sprintf("work order %s opened as %s", created.Code, created.MaintenanceType)
	if created.Status == entities.WorkOrderStatusEvaluating {
		note += ", awaiting client authorization"
	}
	return created, appendAudit(ctx, u.workLogs, created.ID, SystemAuthorID, entities.WorkLogTypeNote, note)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "work order id is required")
	}
	return u.load(ctx, id)
}

func (u *WorkOrderUseCase) ChangeStatus(ctx context.Context, id string, status entities.WorkOrderStatus, comment, authorID string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	comment = strings.TrimSpace(comment)
	log.Printf("[workorder][usecase] change-status start work_order_id=%s status=%s", id, status)
	if id == "" {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "work order id is required")
	}
	if !status.IsValid() {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "unknown work order status %q", status)
	}
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "comment cannot exceed %d characters", maxCommentLength)
	}

	var (
		updated entities.WorkOrder
		from    entities.WorkOrderStatus
	)
	err := u.locker.WithLock(ctx, workOrderLockKey(id), func(ctx context.Context) error {
		o, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if status == entities.WorkOrderStatusAssigned {
			return ruleErr(ErrInvalidTransition, "work order %s becomes ASSIGNED only by assigning an employee", o.Code)
		}
		if !o.Status.CanTransitionTo(status) {
			return ruleErr(ErrInvalidTransition, "work order %s cannot move from %s to %s", o.Code, o.Status, status)
		}

		from = o.Status
		o.MoveTo(status, time.Now().UTC())
		updated, err = u.save(ctx, o)
		return err
	})
	if err != nil {
		log.Printf("[workorder][usecase] change-status failed work_order_id=%s status=%s err=%v", id, status, err)
		return entities.WorkOrder{}, err
	}
	log.Printf("[workorder][usecase] change-status success work_order_id=%s from=%s to=%s", id, from, status)

	note := fmt.Sprintf("status changed from %s to %s", from, status)
	if comment != "" {
		note += ": " + comment
	}
	return updated, appendAudit(ctx, u.workLogs, updated.ID, authorID, entities.WorkLogTypeProgress, note)
}

func (u *WorkOrderUseCase) ChangeMaintenanceType(ctx context.Context, id string, maintenanceType entities.MaintenanceType, reason, authorID string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	reason = strings.TrimSpace(reason)
	log.Printf("[workorder][usecase] change-maintenance-type start work_order_id=%s type=%s", id, maintenanceType)
	if id == "" {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "work order id is required")
	}
	if !maintenanceType.IsValid() {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "unknown maintenance type %q", maintenanceType)
	}
	if utf8.RuneCountInString(reason) < minReasonLength {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "reason must have at least %d characters", minReasonLength)
	}
	if utf8.RuneCountInString(reason) > maxCommentLength {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "reason cannot exceed %d characters", maxCommentLength)
	}

	var (
		updated    entities.WorkOrder
		oldType    entities.MaintenanceType
		fromStatus entities.WorkOrderStatus
	)
	err := u.locker.WithLock(ctx, workOrderLockKey(id), func(ctx context.Context) error {
		o, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if o.Status.IsTerminal() {
			return ruleErr(ErrInvalidTransition, "work order %s is %s and cannot change maintenance type", o.Code, o.Status)
		}
		if o.MaintenanceType == maintenanceType {
			return ruleErr(ErrValidation, "work order %s is already %s", o.Code, maintenanceType)
		}

		now := time.Now().UTC()
		oldType = o.MaintenanceType
		fromStatus = o.Status
		o.MaintenanceType = maintenanceType
		o.UpdatedAt = now
		// Preventive work waits for client sign-off whatever it was doing.
		if maintenanceType == entities.MaintenanceTypePreventive && o.Status != entities.WorkOrderStatusEvaluating {
			o.MoveTo(entities.WorkOrderStatusEvaluating, now)
		}
		updated, err = u.save(ctx, o)
		return err
	})
	if err != nil {
		log.Printf("[workorder][usecase] change-maintenance-type failed work_order_id=%s err=%v", id, err)
		return entities.WorkOrder{}, err
	}
	log.Printf("[workorder][usecase] change-maintenance-type success work_order_id=%s from=%s to=%s status=%s", id, oldType, maintenanceType, updated.Status)

	note := fmt.Sprintf("maintenance type changed from %s to %s: %s", oldType, maintenanceType, reason)
	if fromStatus != updated.Status {
		note += fmt.Sprintf(" (status %s -> %s, awaiting client authorization)", fromStatus, updated.Status)
	}
	return updated, appendAudit(ctx, u.workLogs, updated.ID, authorID, entities.WorkLogTypeNote, note)
}

func (u *WorkOrderUseCase) MarkAssigned(ctx context.Context, id, assigneeID string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "work order id is required")
	}

	var (
		updated entities.WorkOrder
		changed bool
	)
	err := u.locker.WithLock(ctx, workOrderLockKey(id), func(ctx context.Context) error {
		o, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		if o.Status != entities.WorkOrderStatusCreated {
			updated = o
			return nil
		}
		o.MoveTo(entities.WorkOrderStatusAssigned, time.Now().UTC())
		updated, err = u.save(ctx, o)
		changed = err == nil
		return err
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !changed {
		return updated, nil
	}
	log.Printf("[workorder][usecase] mark-assigned work_order_id=%s assignee_id=%s", id, assigneeID)

	note := fmt.Sprintf("employee %s assigned, status changed from %s to %s", assigneeID, entities.WorkOrderStatusCreated, entities.WorkOrderStatusAssigned)
	return updated, appendAudit(ctx, u.workLogs, updated.ID, SystemAuthorID, entities.WorkLogTypeProgress, note)
}

func (u *WorkOrderUseCase) ApplyAuthorizationOutcome(ctx context.Context, id string, approved bool, authorID string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ruleErr(ErrValidation, "work order id is required")
	}

	var (
		updated entities.WorkOrder
		changed bool
	)
	err := u.locker.WithLock(ctx, workOrderLockKey(id), func(ctx context.Context) error {
		o, err := u.load(ctx, id)
		if err != nil {
			return err
		}
		// Only a preventive order waiting for sign-off reacts; corrective
		// work continues whatever the client decides on the quotation.
		if o.MaintenanceType != entities.MaintenanceTypePreventive || o.Status != entities.WorkOrderStatusEvaluating {
			updated = o
			return nil
		}
		next := entities.WorkOrderStatusNoAuthorized
		if approved {
			next = entities.WorkOrderStatusInProgress
		}
		o.MoveTo(next, time.Now().UTC())
		updated, err = u.save(ctx, o)
		changed = err == nil
		return err
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !changed {
		return updated, nil
	}
	log.Printf("[workorder][usecase] authorization-outcome work_order_id=%s approved=%t status=%s", id, approved, updated.Status)

	note := "client authorized the preventive service, work resumes"
	if !approved {
		note = "client declined the preventive service, work order released without further billable work"
	}
	return updated, appendAudit(ctx, u.workLogs, updated.ID, authorID, entities.WorkLogTypeCustomerNote, note)
}

func (u *WorkOrderUseCase) load(ctx context.Context, id string) (entities.WorkOrder, error) {
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, notFound("work order", id)
	}
	return o, nil
}

func (u *WorkOrderUseCase) save(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, notFound("work order", o.ID)
	}
	return updated, nil
}
