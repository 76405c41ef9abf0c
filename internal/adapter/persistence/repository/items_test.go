package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"mecanica_workflow/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func TestInvoiceItem_MoneyStaysExact(t *testing.T) {
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	inv := entities.Invoice{
		ID:          "inv-1",
		QuotationID: "q-1",
		Status:      entities.InvoiceStatusIssued,
		Total:       decimal.RequireFromString("100.10"),
		Currency:    "GTQ",
		IssueDate:   time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC),
		DueDate:     &due,
		Items: []entities.InvoiceItem{
			{QuotationID: "q-1", ProductID: "p-1", Name: "Filtro", Quantity: 2, Price: decimal.RequireFromString("50.05")},
		},
	}

	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	total, ok := av["total"].(*types.AttributeValueMemberS)
	if !ok || total.Value != "100.1" {
		t.Fatalf("expected total stored as decimal string, got %#v", av["total"])
	}
	if _, ok := av["customer_id"]; ok {
		t.Fatalf("empty customer_id must be omitted so the GSI stays sparse")
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromInvoiceItem(it)
	if !got.Total.Equal(inv.Total) || !got.IssueDate.Equal(inv.IssueDate) {
		t.Fatalf("unexpected invoice: %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("unexpected due date: %v", got.DueDate)
	}
	if len(got.Items) != 1 || got.Items[0].QuotationID != "q-1" || !got.Items[0].Price.Equal(decimal.RequireFromString("50.05")) {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
}

func TestWorkAssignmentItem_ReleasedAt(t *testing.T) {
	a := entities.WorkAssignment{ID: "a-1", WorkOrderID: "wo-1", AssigneeID: "emp-1", Role: entities.AssignmentRoleEmployee, AssignedAt: time.Now().UTC()}

	active := fromWorkAssignmentItem(toWorkAssignmentItem(a))
	if !active.IsActive() {
		t.Fatalf("expected active assignment after round trip")
	}

	released := time.Now().UTC()
	a.ReleasedAt = &released
	got := fromWorkAssignmentItem(toWorkAssignmentItem(a))
	if got.IsActive() || !got.ReleasedAt.Equal(released) {
		t.Fatalf("expected released assignment, got %+v", got)
	}
}

func TestPaymentItem_ProviderPayload(t *testing.T) {
	p := entities.Payment{ID: "p-1", InvoiceID: "inv-1", Amount: decimal.RequireFromString("0.01"), PaidAt: time.Now().UTC()}
	got := fromPaymentItem(toPaymentItem(p))
	if got.ProviderPayloadRaw != nil {
		t.Fatalf("expected no provider payload for a cash payment")
	}
	if !got.Amount.Equal(p.Amount) {
		t.Fatalf("expected amount %s, got %s", p.Amount, got.Amount)
	}

	p.ProviderPayloadRaw = []byte(`{"id":1}`)
	got = fromPaymentItem(toPaymentItem(p))
	if string(got.ProviderPayloadRaw) != `{"id":1}` {
		t.Fatalf("unexpected provider payload %s", got.ProviderPayloadRaw)
	}
}

func TestParseHelpers(t *testing.T) {
	if parseTimePtr("") != nil || parseTimePtr("yesterday") != nil {
		t.Fatalf("expected nil for empty or invalid time")
	}
	if !parseDecimal("abc").IsZero() {
		t.Fatalf("expected zero for invalid decimal")
	}
	names := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#id": "id"})
	if len(names) != 2 {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestKeyQueryInput(t *testing.T) {
	t.Run("base table partitions are read consistently", func(t *testing.T) {
		in := keyQueryInput("payments", "", "invoice_id", "inv-1")
		if in.IndexName != nil {
			t.Fatalf("expected a base-table query, got index %s", aws.ToString(in.IndexName))
		}
		if !aws.ToBool(in.ConsistentRead) {
			t.Fatalf("expected ConsistentRead on a base-table query")
		}
		if in.ExpressionAttributeNames["#k"] != "invoice_id" {
			t.Fatalf("unexpected key attribute %v", in.ExpressionAttributeNames)
		}
		v, ok := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS)
		if !ok || v.Value != "inv-1" {
			t.Fatalf("unexpected key value %#v", in.ExpressionAttributeValues[":v"])
		}
	})

	t.Run("gsi queries never ask for consistency", func(t *testing.T) {
		in := keyQueryInput("assignments", assignmentsAssigneeIDIndex, "assignee_id", "emp-1")
		if aws.ToString(in.IndexName) != assignmentsAssigneeIDIndex {
			t.Fatalf("expected index %s, got %v", assignmentsAssigneeIDIndex, in.IndexName)
		}
		if in.ConsistentRead != nil {
			t.Fatalf("DynamoDB rejects ConsistentRead on a GSI")
		}
	})
}

func TestWorkAssignmentItem_PartitionedByWorkOrder(t *testing.T) {
	a := entities.WorkAssignment{ID: "a-1", WorkOrderID: "wo-1", AssigneeID: "emp-1", Role: entities.AssignmentRoleEmployee, AssignedAt: time.Now().UTC()}

	av, err := attributevalue.MarshalMap(toWorkAssignmentItem(a))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if pk, ok := av["work_order_id"].(*types.AttributeValueMemberS); !ok || pk.Value != "wo-1" {
		t.Fatalf("expected the order id as partition key, got %#v", av["work_order_id"])
	}

	ref, err := attributevalue.MarshalMap(assignmentRef(a))
	if err != nil {
		t.Fatalf("marshal ref: %v", err)
	}
	if pk := ref["work_order_id"].(*types.AttributeValueMemberS); pk.Value != "assignment#a-1" {
		t.Fatalf("unexpected reference partition %q", pk.Value)
	}
	if _, ok := ref["assignee_id"]; ok {
		t.Fatalf("reference rows must stay out of the assignee GSI")
	}
	if target := ref["target_work_order_id"].(*types.AttributeValueMemberS); target.Value != "wo-1" {
		t.Fatalf("unexpected reference target %q", target.Value)
	}

	key := partitionKey("work_order_id", "wo-1", "a-1")
	if len(key) != 2 {
		t.Fatalf("expected a composite key, got %v", key)
	}
}

func TestNewRowPut_IsConditional(t *testing.T) {
	put, err := newRowPut("invoices", invoiceQuotationRefItem{ID: invoiceQuotationPrefix + "q-1", InvoiceID: "inv-1"})
	if err != nil {
		t.Fatalf("newRowPut: %v", err)
	}
	if put.Put == nil || aws.ToString(put.Put.ConditionExpression) != "attribute_not_exists(#id)" {
		t.Fatalf("expected a conditional put, got %+v", put.Put)
	}
	if id := put.Put.Item["id"].(*types.AttributeValueMemberS); id.Value != "quotation#q-1" {
		t.Fatalf("unexpected reservation id %q", id.Value)
	}
}

func TestTransactionConditionFailed(t *testing.T) {
	cancelled := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
	wrapped := fmt.Errorf("transact write: %w", cancelled)

	cases := []struct {
		name string
		err  error
		item int
		want bool
	}{
		{"nil error", nil, 1, false},
		{"other error", errors.New("throttled"), 1, false},
		{"item that passed", wrapped, 0, false},
		{"item that failed", wrapped, 1, true},
		{"index out of range", wrapped, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := transactionConditionFailed(tc.err, tc.item); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
