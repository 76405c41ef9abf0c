package repository

import (
	"context"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const workLogsWorkOrderIDIndex = "work_order_id-index"

type workLogItem struct {
	ID          string  `dynamodbav:"id"`
	WorkOrderID string  `dynamodbav:"work_order_id"`
	AuthorID    string  `dynamodbav:"author_id"`
	LogType     string  `dynamodbav:"log_type"`
	Note        string  `dynamodbav:"note"`
	Hours       float64 `dynamodbav:"hours"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// WorkLogDynamoRepository is append-only: there is no update or delete.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)

type WorkLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkLogRepository = (*WorkLogDynamoRepository)(nil)

func NewWorkLogDynamoRepository(ddb *dynamodb.Client, tableName string) *WorkLogDynamoRepository {
	return &WorkLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkLogDynamoRepository) Create(ctx context.Context, l entities.WorkLog) (entities.WorkLog, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toWorkLogItem(l)); err != nil {
		return entities.WorkLog{}, err
	}
	return l, nil
}

func (r *WorkLogDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkLog, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, workLogsWorkOrderIDIndex, "work_order_id", workOrderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.WorkLog, 0, len(raw))
	for _, m := range raw {
		var it workLogItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromWorkLogItem(it))
	}
	return out, nil
}

func toWorkLogItem(l entities.WorkLog) workLogItem {
	return workLogItem{
		ID:          l.ID,
		WorkOrderID: l.WorkOrderID,
		AuthorID:    l.AuthorID,
		LogType:     string(l.LogType),
		Note:        l.Note,
		Hours:       l.Hours,
		CreatedAt:   formatTime(l.CreatedAt),
	}
}

func fromWorkLogItem(it workLogItem) entities.WorkLog {
	return entities.WorkLog{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		AuthorID:    it.AuthorID,
		LogType:     entities.WorkLogType(it.LogType),
		Note:        it.Note,
		Hours:       it.Hours,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
