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
	invoicesCustomerIDIndex = "customer_id-index"
	invoiceQuotationPrefix  = "quotation#"
)

type invoiceItem struct {
	ID          string     `dynamodbav:"id"`
	Code        string     `dynamodbav:"code"`
	WorkOrderID string     `dynamodbav:"work_order_id"`
	QuotationID string     `dynamodbav:"quotation_id"`
	CustomerID  string     `dynamodbav:"customer_id,omitempty"`
	Status      string     `dynamodbav:"status"`
	Total       string     `dynamodbav:"total"`
	Currency    string     `dynamodbav:"currency"`
	IssueDate   string     `dynamodbav:"issue_date"`
	DueDate     string     `dynamodbav:"due_date,omitempty"`
	Notes       string     `dynamodbav:"notes,omitempty"`
	Items       []lineItem `dynamodbav:"items"`
	UpdatedAt   string     `dynamodbav:"updated_at"`
}

// invoiceQuotationRefItem reserves a quotation for one invoice. It shares the
// invoices table under id = "quotation#<quotation id>".
type invoiceQuotationRefItem struct {
	ID        string `dynamodbav:"id"`
	InvoiceID string `dynamodbav:"invoice_id"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB. The
// outstanding balance is never stored; status is a projection refreshed by
// the invoice use case.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, tableName string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create stores the invoice together with its quotation reservation. The
// reservation is conditional, so a second invoice for the same quotation
// fails with ErrQuotationAlreadyInvoiced.
func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	row, err := newRowPut(r.tableName, toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}
	ref, err := newRowPut(r.tableName, invoiceQuotationRefItem{ID: invoiceQuotationPrefix + inv.QuotationID, InvoiceID: inv.ID})
	if err != nil {
		return entities.Invoice{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{row, ref},
	})
	if transactionConditionFailed(err, 1) {
		return entities.Invoice{}, interfaces.ErrQuotationAlreadyInvoiced
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var it invoiceItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// GetByQuotationID follows the quotation reservation with two consistent reads.
func (r *InvoiceDynamoRepository) GetByQuotationID(ctx context.Context, quotationID string) (entities.Invoice, error) {
	var ref invoiceQuotationRefItem
	found, err := getByID(ctx, r.ddb, r.tableName, invoiceQuotationPrefix+quotationID, &ref)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return r.GetByID(ctx, ref.InvoiceID)
}

func (r *InvoiceDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, invoicesCustomerIDIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(raw))
	for _, m := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromInvoiceItem(it))
	}
	return out, nil
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus, notes string) (entities.Invoice, error) {
	attrs, err := updateByID(ctx, r.ddb, r.tableName, id,
		"SET #status = :status, #notes = :notes, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":notes":      &types.AttributeValueMemberS{Value: notes},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		map[string]string{
			"#status":     "status",
			"#notes":      "notes",
			"#updated_at": "updated_at",
		},
	)
	if err != nil || attrs == nil {
		return entities.Invoice{}, err
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	items := make([]lineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
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
	return invoiceItem{
		ID:          inv.ID,
		Code:        inv.Code,
		WorkOrderID: inv.WorkOrderID,
		QuotationID: inv.QuotationID,
		CustomerID:  inv.CustomerID,
		Status:      string(inv.Status),
		Total:       decimalToString(inv.Total),
		Currency:    inv.Currency,
		IssueDate:   formatTime(inv.IssueDate),
		DueDate:     formatTimePtr(inv.DueDate),
		Notes:       inv.Notes,
		Items:       items,
		UpdatedAt:   formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	items := make([]entities.InvoiceItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.InvoiceItem{
			QuotationID: it.QuotationID,
			ProductID:   li.ProductID,
			Name:        li.Name,
			Brand:       li.Brand,
			Category:    li.Category,
			Unit:        li.Unit,
			Quantity:    li.Quantity,
			Price:       parseDecimal(li.Price),
		})
	}
	return entities.Invoice{
		ID:          it.ID,
		Code:        it.Code,
		WorkOrderID: it.WorkOrderID,
		QuotationID: it.QuotationID,
		CustomerID:  it.CustomerID,
		Status:      entities.InvoiceStatus(it.Status),
		Total:       parseDecimal(it.Total),
		Currency:    it.Currency,
		IssueDate:   parseTime(it.IssueDate),
		DueDate:     parseTimePtr(it.DueDate),
		Notes:       it.Notes,
		Items:       items,
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
