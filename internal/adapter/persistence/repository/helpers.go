package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// putNew writes item only when no row with the same id exists.
func putNew(ctx context.Context, ddb *dynamodb.Client, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// putExisting replaces a row that must already exist. found is false when
// the id is unknown.
func putExisting(ctx context.Context, ddb *dynamodb.Client, table string, item any) (found bool, err error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionalCheckFailed(err) {
		return false, nil
	}
	return err == nil, err
}

// getByID loads one row into out. found is false when the id is unknown.
func getByID(ctx context.Context, ddb *dynamodb.Client, table, id string, out any) (found bool, err error) {
	return getByKey(ctx, ddb, table, idKey(id), out)
}

// getByKey is getByID for tables with a composite primary key.
func getByKey(ctx context.Context, ddb *dynamodb.Client, table string, key map[string]types.AttributeValue, out any) (found bool, err error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// partitionKey addresses one row of a table keyed by parent (PK) and id (SK).
func partitionKey(parentAttr, parentID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		parentAttr: &types.AttributeValueMemberS{Value: parentID},
		"id":       &types.AttributeValueMemberS{Value: id},
	}
}

// queryIndex reads every page of a GSI query on attr = value. GSI reads are
// eventually consistent, so only listings that decide nothing use it.
func queryIndex(ctx context.Context, ddb *dynamodb.Client, table, index, attr, value string) ([]map[string]types.AttributeValue, error) {
	return queryAll(ctx, ddb, keyQueryInput(table, index, attr, value))
}

// queryPartition reads every page of the base-table partition attr = value
// with a strongly consistent read. Rules that count or sum rows (ledger,
// active assignments) read through here.
func queryPartition(ctx context.Context, ddb *dynamodb.Client, table, attr, value string) ([]map[string]types.AttributeValue, error) {
	return queryAll(ctx, ddb, keyQueryInput(table, "", attr, value))
}

// keyQueryInput builds a query on attr = value. An empty index targets the
// base table and asks for a consistent read.
func keyQueryInput(table, index, attr, value string) *dynamodb.QueryInput {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	if index == "" {
		in.ConsistentRead = aws.Bool(true)
	} else {
		in.IndexName = aws.String(index)
	}
	return in
}

func queryAll(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(ddb, in)

	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// newRowPut is the transactional form of putNew.
func newRowPut(table string, item any) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}, nil
}

// updateByID applies updateExpr to an existing row and returns the new
// attributes, or nil when the id is unknown.
func updateByID(
	ctx context.Context,
	ddb *dynamodb.Client,
	table, id, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (map[string]types.AttributeValue, error) {
	return updateByKey(ctx, ddb, table, idKey(id), updateExpr, values, names)
}

func updateByKey(
	ctx context.Context,
	ddb *dynamodb.Client,
	table string,
	key map[string]types.AttributeValue,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (map[string]types.AttributeValue, error) {
	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       key,
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, nil
		}
		return nil, err
	}
	return out.Attributes, nil
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return err != nil && errors.As(err, &cfe)
}

// transactionConditionFailed reports whether item i of a cancelled
// TransactWriteItems call failed its condition.
func transactionConditionFailed(err error, i int) bool {
	var tce *types.TransactionCanceledException
	if err == nil || !errors.As(err, &tce) || i >= len(tce.CancellationReasons) {
		return false
	}
	return aws.ToString(tce.CancellationReasons[i].Code) == "ConditionalCheckFailed"
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

// Money is stored as a decimal string so no float rounding reaches the ledger.
func decimalToString(d decimal.Decimal) string {
	return d.String()
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
