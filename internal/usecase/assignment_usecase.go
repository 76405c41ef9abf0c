package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// maxAssigneeIDLength keeps the reassignment note, which carries both ids and
// the reason, inside the work log note limit.
const maxAssigneeIDLength = 128

type AssignInput struct {
	WorkOrderID string
	AssigneeID  string
	Role        entities.AssignmentRole
	AssignedAt  *time.Time
}

type ReassignInput struct {
	WorkOrderID    string
	FromAssigneeID string
	ToAssigneeID   string
	Reason         string
	AuthorID       string
}

// IAssignmentUseCase is the assignment manager.
//
// Rules:
//   - one active assignment per role slot (employee, specialist) per order
//   - an assignee never holds two active assignments on the same order
//   - released rows are kept as history
//   - workload is advisory and never blocks an assignment

type IAssignmentUseCase interface {
	Assign(ctx context.Context, in AssignInput) (entities.WorkAssignment, error)
	Release(ctx context.Context, assignmentID string) (entities.WorkAssignment, error)
	Reassign(ctx context.Context, in ReassignInput) (entities.WorkAssignment, error)
	ListActive(ctx context.Context, workOrderID string) ([]entities.WorkAssignment, error)
	ListHistory(ctx context.Context, workOrderID string) ([]entities.WorkAssignment, error)
	GetWorkload(ctx context.Context, assigneeID string) (entities.Workload, error)
}

type AssignmentUseCase struct {
	repo     interfaces.IWorkAssignmentRepository
	orders   IWorkOrderUseCase
	workLogs IWorkLogUseCase
	locker   interfaces.ILocker
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(repo interfaces.IWorkAssignmentRepository, orders IWorkOrderUseCase, workLogs IWorkLogUseCase, locker interfaces.ILocker) *AssignmentUseCase {
	return &AssignmentUseCase{repo: repo, orders: orders, workLogs: workLogs, locker: locker}
}

func (u *AssignmentUseCase) Assign(ctx context.Context, in AssignInput) (entities.WorkAssignment, error) {
	in.WorkOrderID = strings.TrimSpace(in.WorkOrderID)
	in.AssigneeID = strings.TrimSpace(in.AssigneeID)
	log.Printf("[assignment][usecase] assign start work_order_id=%s assignee_id=%s role=%s", in.WorkOrderID, in.AssigneeID, in.Role)
	if in.WorkOrderID == "" {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "work order id is required")
	}
	if in.AssigneeID == "" {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "assignee id is required")
	}
	if utf8.RuneCountInString(in.AssigneeID) > maxAssigneeIDLength {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "assignee id cannot exceed %d characters", maxAssigneeIDLength)
	}
	if !in.Role.IsValid() {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "unknown assignment role %q", in.Role)
	}

	var (
		created  entities.WorkAssignment
		auditErr error
	)
	err := u.locker.WithLock(ctx, workOrderLockKey(in.WorkOrderID), func(ctx context.Context) error {
		order, err := u.orders.GetByID(ctx, in.WorkOrderID)
		if err != nil {
			return err
		}
		if order.Status.IsTerminal() {
			return ruleErr(ErrInvalidTransition, "work order %s is %s and cannot receive assignments", order.Code, order.Status)
		}

		active, err := u.activeOf(ctx, in.WorkOrderID)
		if err != nil {
			return err
		}
		for _, a := range active {
			if a.AssigneeID == in.AssigneeID {
				return ruleErr(ErrAlreadyAssigned, "assignee %s is already assigned to work order %s", in.AssigneeID, order.Code)
			}
			if a.Role == in.Role {
				return ruleErr(ErrAlreadyAssigned, "work order %s already has an active %s (%s); reassign instead", order.Code, in.Role, a.AssigneeID)
			}
		}

		assignedAt := time.Now().UTC()
		if in.AssignedAt != nil && !in.AssignedAt.IsZero() {
			assignedAt = in.AssignedAt.UTC()
		}
		created, err = u.repo.Create(ctx, entities.WorkAssignment{
			ID:          uuid.NewString(),
			WorkOrderID: in.WorkOrderID,
			AssigneeID:  in.AssigneeID,
			Role:        in.Role,
			AssignedAt:  assignedAt,
		})
		if err != nil {
			return err
		}

		if in.Role != entities.AssignmentRoleEmployee || order.Status != entities.WorkOrderStatusCreated {
			return nil
		}
		_, err = u.orders.MarkAssigned(ctx, in.WorkOrderID, in.AssigneeID)
		switch {
		case err == nil:
		case IsAuditOnly(err):
			auditErr = err
		default:
			// Undo the row so the order never shows an employee without the status change.
			if _, rErr := u.repo.MarkReleased(ctx, created.ID, time.Now().UTC()); rErr != nil {
				log.Printf("[assignment][usecase] compensation failed assignment_id=%s err=%v", created.ID, rErr)
			}
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("[assignment][usecase] assign failed work_order_id=%s assignee_id=%s err=%v", in.WorkOrderID, in.AssigneeID, err)
		return entities.WorkAssignment{}, err
	}
	log.Printf("[assignment][usecase] assign success work_order_id=%s assignment_id=%s", in.WorkOrderID, created.ID)

	note := fmt.Sprintf("%s %s assigned", strings.ToLower(string(created.Role)), created.AssigneeID)
	return created, errors.Join(auditErr, appendAudit(ctx, u.workLogs, created.WorkOrderID, SystemAuthorID, entities.WorkLogTypeNote, note))
}

func (u *AssignmentUseCase) Release(ctx context.Context, assignmentID string) (entities.WorkAssignment, error) {
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "assignment id is required")
	}

	current, err := u.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return entities.WorkAssignment{}, err
	}
	if current.ID == "" {
		return entities.WorkAssignment{}, notFound("assignment", assignmentID)
	}

	var released entities.WorkAssignment
	err = u.locker.WithLock(ctx, workOrderLockKey(current.WorkOrderID), func(ctx context.Context) error {
		a, err := u.repo.GetByID(ctx, assignmentID)
		if err != nil {
			return err
		}
		if !a.IsActive() {
			return ruleErr(ErrNoActiveAssignment, "assignment %s was already released", assignmentID)
		}
		released, err = u.repo.MarkReleased(ctx, assignmentID, time.Now().UTC())
		if err != nil {
			return err
		}
		if released.ID == "" {
			return notFound("assignment", assignmentID)
		}
		return nil
	})
	if err != nil {
		log.Printf("[assignment][usecase] release failed assignment_id=%s err=%v", assignmentID, err)
		return entities.WorkAssignment{}, err
	}
	log.Printf("[assignment][usecase] release success assignment_id=%s work_order_id=%s", assignmentID, released.WorkOrderID)

	note := fmt.Sprintf("%s %s released", strings.ToLower(string(released.Role)), released.AssigneeID)
	return released, appendAudit(ctx, u.workLogs, released.WorkOrderID, SystemAuthorID, entities.WorkLogTypeNote, note)
}

func (u *AssignmentUseCase) Reassign(ctx context.Context, in ReassignInput) (entities.WorkAssignment, error) {
	in.WorkOrderID = strings.TrimSpace(in.WorkOrderID)
	in.FromAssigneeID = strings.TrimSpace(in.FromAssigneeID)
	in.ToAssigneeID = strings.TrimSpace(in.ToAssigneeID)
	in.Reason = strings.TrimSpace(in.Reason)
	log.Printf("[assignment][usecase] reassign start work_order_id=%s from=%s to=%s", in.WorkOrderID, in.FromAssigneeID, in.ToAssigneeID)
	if in.WorkOrderID == "" || in.FromAssigneeID == "" || in.ToAssigneeID == "" {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "work order, from and to assignee ids are required")
	}
	if utf8.RuneCountInString(in.FromAssigneeID) > maxAssigneeIDLength || utf8.RuneCountInString(in.ToAssigneeID) > maxAssigneeIDLength {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "assignee ids cannot exceed %d characters", maxAssigneeIDLength)
	}
	if in.FromAssigneeID == in.ToAssigneeID {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "cannot reassign %s to themselves", in.FromAssigneeID)
	}
	if in.Reason == "" {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "a reason is required to reassign")
	}
	if utf8.RuneCountInString(in.Reason) > maxCommentLength {
		return entities.WorkAssignment{}, ruleErr(ErrValidation, "reason cannot exceed %d characters", maxCommentLength)
	}

	var (
		from    entities.WorkAssignment
		created entities.WorkAssignment
	)
	err := u.locker.WithLock(ctx, workOrderLockKey(in.WorkOrderID), func(ctx context.Context) error {
		order, err := u.orders.GetByID(ctx, in.WorkOrderID)
		if err != nil {
			return err
		}
		if order.Status.IsTerminal() {
			return ruleErr(ErrInvalidTransition, "work order %s is %s and cannot be reassigned", order.Code, order.Status)
		}

		active, err := u.activeOf(ctx, in.WorkOrderID)
		if err != nil {
			return err
		}
		found := false
		for _, a := range active {
			switch a.AssigneeID {
			case in.FromAssigneeID:
				from, found = a, true
			case in.ToAssigneeID:
				return ruleErr(ErrAlreadyAssigned, "assignee %s is already assigned to work order %s", in.ToAssigneeID, order.Code)
			}
		}
		if !found {
			return ruleErr(ErrNoActiveAssignment, "assignee %s has no active assignment on work order %s", in.FromAssigneeID, order.Code)
		}

		now := time.Now().UTC()
		if _, err := u.repo.MarkReleased(ctx, from.ID, now); err != nil {
			return err
		}
		created, err = u.repo.Create(ctx, entities.WorkAssignment{
			ID:          uuid.NewString(),
			WorkOrderID: in.WorkOrderID,
			AssigneeID:  in.ToAssigneeID,
			Role:        from.Role,
			AssignedAt:  now,
		})
		return err
	})
	if err != nil {
		log.Printf("[assignment][usecase] reassign failed work_order_id=%s err=%v", in.WorkOrderID, err)
		return entities.WorkAssignment{}, err
	}
	log.Printf("[assignment][usecase] reassign success work_order_id=%s released=%s created=%s", in.WorkOrderID, from.ID, created.ID)

	author := in.AuthorID
	if strings.TrimSpace(author) == "" {
		author = in.FromAssigneeID
	}
	note := fmt.Sprintf("%s reassigned from %s to %s: %s", strings.ToLower(string(from.Role)), in.FromAssigneeID, in.ToAssigneeID, in.Reason)
	return created, appendAudit(ctx, u.workLogs, in.WorkOrderID, author, entities.WorkLogTypeNote, note)
}

func (u *AssignmentUseCase) ListActive(ctx context.Context, workOrderID string) ([]entities.WorkAssignment, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if _, err := u.orders.GetByID(ctx, workOrderID); err != nil {
		return nil, err
	}
	return u.activeOf(ctx, workOrderID)
}

func (u *AssignmentUseCase) ListHistory(ctx context.Context, workOrderID string) ([]entities.WorkAssignment, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if _, err := u.orders.GetByID(ctx, workOrderID); err != nil {
		return nil, err
	}
	all, err := u.repo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	sortByAssignedAt(all)
	return all, nil
}

func (u *AssignmentUseCase) GetWorkload(ctx context.Context, assigneeID string) (entities.Workload, error) {
	assigneeID = strings.TrimSpace(assigneeID)
	if assigneeID == "" {
		return entities.Workload{}, ruleErr(ErrValidation, "assignee id is required")
	}

	active, err := u.repo.ListActiveByAssigneeID(ctx, assigneeID)
	if err != nil {
		return entities.Workload{}, err
	}
	orders := make(map[string]struct{}, len(active))
	for _, a := range active {
		if a.IsActive() {
			orders[a.WorkOrderID] = struct{}{}
		}
	}
	return entities.Workload{AssigneeID: assigneeID, ActiveOrderCount: len(orders)}, nil
}

func (u *AssignmentUseCase) activeOf(ctx context.Context, workOrderID string) ([]entities.WorkAssignment, error) {
	all, err := u.repo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	active := make([]entities.WorkAssignment, 0, len(all))
	for _, a := range all {
		if a.IsActive() {
			active = append(active, a)
		}
	}
	sortByAssignedAt(active)
	return active, nil
}

func sortByAssignedAt(list []entities.WorkAssignment) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].AssignedAt.Before(list[j].AssignedAt)
	})
}
