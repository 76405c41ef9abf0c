package repository

import (
	"context"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	InvoiceID          string `dynamodbav:"invoice_id"`
	MethodID           string `dynamodbav:"method_id"`
	Amount             string `dynamodbav:"amount"`
	Reference          string `dynamodbav:"reference,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	PaidAt             string `dynamodbav:"paid_at"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository is the payment ledger. Rows are immutable.
//
// The ledger of an invoice is one partition, so the balance check reads it
// with a consistent query instead of through a GSI.
//
// Table requirements:
//   - PK: invoice_id (string)
//   - SK: id (string)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p)); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

// ListByInvoiceID reads the ledger of one invoice. The balance is computed
// from this list, so every page is read and the read is consistent.
func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	raw, err := queryPartition(ctx, r.ddb, r.tableName, "invoice_id", invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(raw))
	for _, m := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromPaymentItem(it))
	}
	return out, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		MethodID:           p.MethodID,
		Amount:             decimalToString(p.Amount),
		Reference:          p.Reference,
		Notes:              p.Notes,
		PaidAt:             formatTime(p.PaidAt),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                it.ID,
		InvoiceID:         it.InvoiceID,
		MethodID:          it.MethodID,
		Amount:            parseDecimal(it.Amount),
		Reference:         it.Reference,
		Notes:             it.Notes,
		PaidAt:            parseTime(it.PaidAt),
		ProviderPaymentID: it.ProviderPaymentID,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}

type paymentMethodItem struct {
	ID   string `dynamodbav:"id"`
	Code string `dynamodbav:"code"`
	Name string `dynamodbav:"name"`
}

// PaymentMethodDynamoRepository reads the payment method reference table.
//
// Table requirements:
//   - PK: id (string)

type PaymentMethodDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodDynamoRepository)(nil)

func NewPaymentMethodDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentMethodDynamoRepository {
	return &PaymentMethodDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentMethodDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentMethod, error) {
	var it paymentMethodItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.PaymentMethod{}, err
	}
	return entities.PaymentMethod{ID: it.ID, Code: it.Code, Name: it.Name}, nil
}

// List scans the whole table; it only holds a handful of rows.
func (r *PaymentMethodDynamoRepository) List(ctx context.Context) ([]entities.PaymentMethod, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var out []entities.PaymentMethod
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, m := range page.Items {
			var it paymentMethodItem
			if err := attributevalue.UnmarshalMap(m, &it); err != nil {
				return nil, err
			}
			out = append(out, entities.PaymentMethod{ID: it.ID, Code: it.Code, Name: it.Name})
		}
	}
	return out, nil
}
