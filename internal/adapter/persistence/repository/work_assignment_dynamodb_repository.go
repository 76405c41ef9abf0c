package repository

import (
	"context"
	"time"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	assignmentsAssigneeIDIndex = "assignee_id-index"
	assignmentRefPrefix        = "assignment#"
)

type workAssignmentItem struct {
	WorkOrderID string `dynamodbav:"work_order_id"`
	ID          string `dynamodbav:"id"`
	AssigneeID  string `dynamodbav:"assignee_id"`
	Role        string `dynamodbav:"role"`
	AssignedAt  string `dynamodbav:"assigned_at"`
	ReleasedAt  string `dynamodbav:"released_at,omitempty"`
}

// assignmentRefItem points an assignment id at the order partition holding it.
// It carries no assignee_id, so it stays out of the workload GSI.
type assignmentRefItem struct {
	WorkOrderID string `dynamodbav:"work_order_id"`
	ID          string `dynamodbav:"id"`
	TargetID    string `dynamodbav:"target_work_order_id"`
}

// WorkAssignmentDynamoRepository persists WorkAssignment entities in DynamoDB.
//
// Every assignment of an order lives in the order's partition, so the
// one-active-per-slot rule reads it with a consistent query. A reference row
// (work_order_id = "assignment#<id>") resolves an assignment id to its order.
//
// Table requirements:
//   - PK: work_order_id (string)
//   - SK: id (string)
//   - GSI: assignee_id-index (PK: assignee_id), workload only

type WorkAssignmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkAssignmentRepository = (*WorkAssignmentDynamoRepository)(nil)

func NewWorkAssignmentDynamoRepository(ddb *dynamodb.Client, tableName string) *WorkAssignmentDynamoRepository {
	return &WorkAssignmentDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create writes the assignment and its reference row in one transaction.
func (r *WorkAssignmentDynamoRepository) Create(ctx context.Context, a entities.WorkAssignment) (entities.WorkAssignment, error) {
	row, err := newRowPut(r.tableName, toWorkAssignmentItem(a))
	if err != nil {
		return entities.WorkAssignment{}, err
	}
	ref, err := newRowPut(r.tableName, assignmentRef(a))
	if err != nil {
		return entities.WorkAssignment{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{row, ref},
	})
	if err != nil {
		return entities.WorkAssignment{}, err
	}
	return a, nil
}

func (r *WorkAssignmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkAssignment, error) {
	workOrderID, err := r.resolve(ctx, id)
	if err != nil || workOrderID == "" {
		return entities.WorkAssignment{}, err
	}
	var it workAssignmentItem
	found, err := getByKey(ctx, r.ddb, r.tableName, partitionKey("work_order_id", workOrderID, id), &it)
	if err != nil || !found {
		return entities.WorkAssignment{}, err
	}
	return fromWorkAssignmentItem(it), nil
}

func (r *WorkAssignmentDynamoRepository) MarkReleased(ctx context.Context, id string, releasedAt time.Time) (entities.WorkAssignment, error) {
	workOrderID, err := r.resolve(ctx, id)
	if err != nil || workOrderID == "" {
		return entities.WorkAssignment{}, err
	}
	attrs, err := updateByKey(ctx, r.ddb, r.tableName, partitionKey("work_order_id", workOrderID, id),
		"SET #released_at = :released_at",
		map[string]types.AttributeValue{
			":released_at": &types.AttributeValueMemberS{Value: formatTime(releasedAt)},
		},
		map[string]string{"#released_at": "released_at"},
	)
	if err != nil || attrs == nil {
		return entities.WorkAssignment{}, err
	}
	var it workAssignmentItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.WorkAssignment{}, err
	}
	return fromWorkAssignmentItem(it), nil
}

// ListByWorkOrderID reads the order partition consistently; the assignment
// manager decides slot conflicts from it.
func (r *WorkAssignmentDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkAssignment, error) {
	raw, err := queryPartition(ctx, r.ddb, r.tableName, "work_order_id", workOrderID)
	if err != nil {
		return nil, err
	}
	return decodeAssignments(raw, false)
}

// ListActiveByAssigneeID goes through the GSI. Workload is advisory, so a
// slightly stale count is acceptable.
func (r *WorkAssignmentDynamoRepository) ListActiveByAssigneeID(ctx context.Context, assigneeID string) ([]entities.WorkAssignment, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, assignmentsAssigneeIDIndex, "assignee_id", assigneeID)
	if err != nil {
		return nil, err
	}
	return decodeAssignments(raw, true)
}

// resolve returns the work order holding assignment id, or "" when unknown.
func (r *WorkAssignmentDynamoRepository) resolve(ctx context.Context, id string) (string, error) {
	var ref assignmentRefItem
	found, err := getByKey(ctx, r.ddb, r.tableName, partitionKey("work_order_id", assignmentRefPrefix+id, id), &ref)
	if err != nil || !found {
		return "", err
	}
	return ref.TargetID, nil
}

func assignmentRef(a entities.WorkAssignment) assignmentRefItem {
	return assignmentRefItem{
		WorkOrderID: assignmentRefPrefix + a.ID,
		ID:          a.ID,
		TargetID:    a.WorkOrderID,
	}
}

func decodeAssignments(raw []map[string]types.AttributeValue, activeOnly bool) ([]entities.WorkAssignment, error) {
	out := make([]entities.WorkAssignment, 0, len(raw))
	for _, m := range raw {
		var it workAssignmentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		a := fromWorkAssignmentItem(it)
		if activeOnly && !a.IsActive() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func toWorkAssignmentItem(a entities.WorkAssignment) workAssignmentItem {
	return workAssignmentItem{
		ID:          a.ID,
		WorkOrderID: a.WorkOrderID,
		AssigneeID:  a.AssigneeID,
		Role:        string(a.Role),
		AssignedAt:  formatTime(a.AssignedAt),
		ReleasedAt:  formatTimePtr(a.ReleasedAt),
	}
}

func fromWorkAssignmentItem(it workAssignmentItem) entities.WorkAssignment {
	return entities.WorkAssignment{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		AssigneeID:  it.AssigneeID,
		Role:        entities.AssignmentRole(it.Role),
		AssignedAt:  parseTime(it.AssignedAt),
		ReleasedAt:  parseTimePtr(it.ReleasedAt),
	}
}
