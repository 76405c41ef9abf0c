package usecase

import (
	"context"
	"log"
	"math"
	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// SystemAuthorID signs the work log entries the workflow writes on its own.
const SystemAuthorID = "system"

type AppendWorkLogInput struct {
	WorkOrderID string
	AuthorID    string
	LogType     entities.WorkLogType
	Note        string
	Hours       float64
}

// IWorkLogUseCase is the append-only work log ledger.
//
// It has no update or delete: corrections are new entries that reference the
// original one in their note.

type IWorkLogUseCase interface {
	Append(ctx context.Context, in AppendWorkLogInput) (entities.WorkLog, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkLog, error)
}

type WorkLogUseCase struct {
	repo   interfaces.IWorkLogRepository
	orders interfaces.IWorkOrderRepository
}

var _ IWorkLogUseCase = (*WorkLogUseCase)(nil)

// NewWorkLogUseCase builds the ledger. orders is only used for the existence
// check of the target work order.
func NewWorkLogUseCase(repo interfaces.IWorkLogRepository, orders interfaces.IWorkOrderRepository) *WorkLogUseCase {
	return &WorkLogUseCase{repo: repo, orders: orders}
}

func (u *WorkLogUseCase) Append(ctx context.Context, in AppendWorkLogInput) (entities.WorkLog, error) {
	in.WorkOrderID = strings.TrimSpace(in.WorkOrderID)
	in.AuthorID = strings.TrimSpace(in.AuthorID)
	note := strings.TrimSpace(in.Note)

	if in.WorkOrderID == "" {
		return entities.WorkLog{}, ruleErr(ErrValidation, "work order id is required")
	}
	if in.AuthorID == "" {
		return entities.WorkLog{}, ruleErr(ErrValidation, "author id is required")
	}
	if !in.LogType.IsValid() {
		return entities.WorkLog{}, ruleErr(ErrValidation, "unknown log type %q", in.LogType)
	}
	if note == "" {
		return entities.WorkLog{}, ruleErr(ErrEmptyNote, "note cannot be empty")
	}
	if utf8.RuneCountInString(note) > entities.MaxWorkLogNoteLength {
		return entities.WorkLog{}, ruleErr(ErrValidation, "note cannot exceed %d characters", entities.MaxWorkLogNoteLength)
	}
	if math.IsNaN(in.Hours) || in.Hours < 0 || in.Hours > entities.MaxWorkLogHours {
		return entities.WorkLog{}, ruleErr(ErrInvalidHours, "hours must be between 0 and %d", entities.MaxWorkLogHours)
	}

	order, err := u.orders.GetByID(ctx, in.WorkOrderID)
	if err != nil {
		log.Printf("[worklog][usecase] failed loading work order work_order_id=%s err=%v", in.WorkOrderID, err)
		return entities.WorkLog{}, err
	}
	if order.ID == "" {
		return entities.WorkLog{}, notFound("work order", in.WorkOrderID)
	}

	l := entities.WorkLog{
		ID:          uuid.NewString(),
		WorkOrderID: in.WorkOrderID,
		AuthorID:    in.AuthorID,
		LogType:     in.LogType,
		Note:        note,
		Hours:       in.Hours,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, l)
	if err != nil {
		log.Printf("[worklog][usecase] create failed work_order_id=%s err=%v", in.WorkOrderID, err)
		return entities.WorkLog{}, err
	}
	return created, nil
}

func (u *WorkLogUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkLog, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ruleErr(ErrValidation, "work order id is required")
	}

	logs, err := u.repo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.Before(logs[j].CreatedAt)
	})
	return logs, nil
}

// appendAudit writes a workflow-generated entry after a committed change.
// A failure is reported as ErrWorkLogNotRecorded so it never masks the change.
func appendAudit(ctx context.Context, workLogs IWorkLogUseCase, workOrderID, authorID string, logType entities.WorkLogType, note string) error {
	if workLogs == nil {
		return nil
	}
	if strings.TrimSpace(authorID) == "" {
		authorID = SystemAuthorID
	}
	if _, err := workLogs.Append(ctx, AppendWorkLogInput{
		WorkOrderID: workOrderID,
		AuthorID:    authorID,
		LogType:     logType,
		Note:        note,
	}); err != nil {
		log.Printf("[worklog][audit] append failed work_order_id=%s err=%v", workOrderID, err)
		return workLogNotRecorded(err)
	}
	return nil
}
