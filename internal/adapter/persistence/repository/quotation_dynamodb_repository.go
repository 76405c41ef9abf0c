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

const quotationsWorkOrderIDIndex = "work_order_id-index"

type lineItem struct {
	ProductID string `dynamodbav:"product_id"`
	Name      string `dynamodbav:"name"`
	Brand     string `dynamodbav:"brand,omitempty"`
	Category  string `dynamodbav:"category,omitempty"`
	Unit      string `dynamodbav:"unit,omitempty"`
	Quantity  int    `dynamodbav:"quantity"`
	Price     string `dynamodbav:"price"`
}

type quotationItem struct {
	ID          string     `dynamodbav:"id"`
	Code        string     `dynamodbav:"code"`
	WorkOrderID string     `dynamodbav:"work_order_id"`
	Status      string     `dynamodbav:"status"`
	ApproveBy   string     `dynamodbav:"approve_by,omitempty"`
	Items       []lineItem `dynamodbav:"items"`
	CreatedAt   string     `dynamodbav:"created_at"`
	UpdatedAt   string     `dynamodbav:"updated_at"`
	DecidedAt   string     `dynamodbav:"decided_at,omitempty"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB. Items
// are embedded in the row as a list.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client, tableName string) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuotationItem(q)); err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	var it quotationItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Quotation, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, quotationsWorkOrderIDIndex, "work_order_id", workOrderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quotation, 0, len(raw))
	for _, m := range raw {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromQuotationItem(it))
	}
	return out, nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus, decidedAt *time.Time) (entities.Quotation, error) {
	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if decidedAt != nil {
		expr += ", #decided_at = :decided_at"
		vals[":decided_at"] = &types.AttributeValueMemberS{Value: formatTime(*decidedAt)}
		names["#decided_at"] = "decided_at"
	}

	attrs, err := updateByID(ctx, r.ddb, r.tableName, id, expr, vals, names)
	if err != nil || attrs == nil {
		return entities.Quotation{}, err
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	items := make([]lineItem, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, lineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Brand:     it.Brand,
			Category:  it.Category,
			Unit:      it.Unit,
			Quantity:  it.Quantity,
			Price:     decimalToString(it.Price),
		})
	}
	return quotationItem{
		ID:          q.ID,
		Code:        q.Code,
		WorkOrderID: q.WorkOrderID,
		Status:      string(q.Status),
		ApproveBy:   q.ApproveBy,
		Items:       items,
		CreatedAt:   formatTime(q.CreatedAt),
		UpdatedAt:   formatTime(q.UpdatedAt),
		DecidedAt:   formatTimePtr(q.DecidedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	items := make([]entities.QuotationItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.QuotationItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Brand:     li.Brand,
			Category:  li.Category,
			Unit:      li.Unit,
			Quantity:  li.Quantity,
			Price:     parseDecimal(li.Price),
		})
	}
	return entities.Quotation{
		ID:          it.ID,
		Code:        it.Code,
		WorkOrderID: it.WorkOrderID,
		Status:      entities.QuotationStatus(it.Status),
		ApproveBy:   it.ApproveBy,
		Items:       items,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
		DecidedAt:   parseTimePtr(it.DecidedAt),
	}
}
