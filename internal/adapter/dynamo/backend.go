package dynamo

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/heartmarshall/notes-backend/internal/adapter/kv"
)

const (
	attrPK = kv.AttrPK
	attrSK = kv.AttrSK
)

//go:generate moq -out api_mock_test.go -pkg dynamo . API

// API is the subset of *dynamodb.Client used by Backend.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Backend provides kv.Backend persistence backed by a DynamoDB table.
type Backend struct {
	api   API
	table string
}

// New creates a backend over the given table.
func New(api API, table string) *Backend {
	return &Backend{api: api, table: table}
}

var _ kv.Backend = (*Backend)(nil)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func (b *Backend) Get(ctx context.Context, key kv.Key) (kv.Item, error) {
	out, err := b.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(b.table),
		Key:            keyAV(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return kv.Item{}, mapError(err, "get item")
	}
	if len(out.Item) == 0 {
		return kv.Item{}, fmt.Errorf("get item: %w", kv.ErrItemNotFound)
	}
	return toItem(out.Item)
}

// Query returns DynamoDB's own LastEvaluatedKey, so a page that ends exactly
// on the last item may be followed by one empty page.
func (b *Backend) Query(ctx context.Context, q kv.Query) (kv.Page, error) {
	if q.Limit < 1 {
		return kv.Page{}, fmt.Errorf("dynamo: query limit must be positive (got %d)", q.Limit)
	}

	keyCond := expression.Key(attrPK).Equal(expression.Value(q.PK))
	if q.SKPrefix != "" {
		keyCond = keyCond.And(expression.Key(attrSK).BeginsWith(q.SKPrefix))
	}
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return kv.Page{}, fmt.Errorf("build query expression: %w", err)
	}

	in := &dynamodb.QueryInput{
		TableName:                 aws.String(b.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(int32(q.Limit)),
		ConsistentRead:            aws.Bool(true),
		ScanIndexForward:          aws.Bool(true),
	}
	if q.StartAfter != nil {
		in.ExclusiveStartKey = keyAV(*q.StartAfter)
	}

	out, err := b.api.Query(ctx, in)
	if err != nil {
		return kv.Page{}, mapError(err, "query")
	}

	page := kv.Page{Items: make([]kv.Item, 0, len(out.Items))}
	for _, av := range out.Items {
		item, err := toItem(av)
		if err != nil {
			return kv.Page{}, err
		}
		page.Items = append(page.Items, item)
	}
	if len(out.LastEvaluatedKey) > 0 {
		last, err := toKey(out.LastEvaluatedKey)
		if err != nil {
			return kv.Page{}, err
		}
		page.LastKey = &last
	}
	return page, nil
}

func (b *Backend) Ping(ctx context.Context) error {
	_, err := b.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(b.table)})
	if err != nil {
		return fmt.Errorf("ping: %w: %w", kv.ErrUnavailable, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

func (b *Backend) Put(ctx context.Context, item kv.Item, cond kv.Condition) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := cond.Validate(); err != nil {
		return err
	}

	attrs := item.Attrs
	if attrs == nil {
		attrs = map[string]any{}
	}
	av, err := attributevalue.MarshalMap(attrs)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	for k, v := range keyAV(item.Key) {
		av[k] = v
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(b.table),
		Item:      av,
	}
	if c, ok := condition(cond); ok {
		expr, err := expression.NewBuilder().WithCondition(c).Build()
		if err != nil {
			return fmt.Errorf("build put condition: %w", err)
		}
		in.ConditionExpression = expr.Condition()
		in.ExpressionAttributeNames = expr.Names()
		in.ExpressionAttributeValues = expr.Values()
	}

	if _, err := b.api.PutItem(ctx, in); err != nil {
		return mapError(err, "put item")
	}
	return nil
}

// Update always requires the item to exist. Attribute names go through
// expression placeholders, never into the expression text.
func (b *Backend) Update(ctx context.Context, key kv.Key, u kv.Update) (kv.Item, error) {
	if err := u.Validate(); err != nil {
		return kv.Item{}, err
	}

	cond := u.Condition
	cond.MustExist = true

	if len(u.Set) == 0 && len(u.Add) == 0 {
		// DynamoDB rejects an empty update expression; check the condition by reading.
		item, err := b.Get(ctx, key)
		if err != nil {
			if errors.Is(err, kv.ErrItemNotFound) {
				return kv.Item{}, fmt.Errorf("update item: %w", kv.ErrConditionFailed)
			}
			return kv.Item{}, err
		}
		if ae := cond.AttrEquals; ae != nil && !kv.Equal(item.Attrs[ae.Name], ae.Value) {
			return kv.Item{}, fmt.Errorf("update item: %w", kv.ErrConditionFailed)
		}
		return item, nil
	}

	var ub expression.UpdateBuilder
	for _, name := range sortedKeys(u.Set) {
		ub = ub.Set(expression.Name(name), expression.Value(u.Set[name]))
	}
	for _, name := range sortedKeys(u.Add) {
		ub = ub.Add(expression.Name(name), expression.Value(u.Add[name]))
	}
	c, _ := condition(cond)

	expr, err := expression.NewBuilder().WithUpdate(ub).WithCondition(c).Build()
	if err != nil {
		return kv.Item{}, fmt.Errorf("build update expression: %w", err)
	}

	out, err := b.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(b.table),
		Key:                       keyAV(key),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return kv.Item{}, mapError(err, "update item")
	}
	return toItem(out.Attributes)
}

// Delete is unconditional and therefore idempotent.
func (b *Backend) Delete(ctx context.Context, key kv.Key) error {
	_, err := b.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(b.table),
		Key:       keyAV(key),
	})
	if err != nil {
		return mapError(err, "delete item")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func condition(cond kv.Condition) (expression.ConditionBuilder, bool) {
	switch {
	case cond.MustNotExist:
		return expression.AttributeNotExists(expression.Name(attrPK)), true
	case cond.AttrEquals != nil:
		return expression.AttributeExists(expression.Name(attrPK)).
			And(expression.Name(cond.AttrEquals.Name).Equal(expression.Value(cond.AttrEquals.Value))), true
	case cond.MustExist:
		return expression.AttributeExists(expression.Name(attrPK)), true
	default:
		return expression.ConditionBuilder{}, false
	}
}

func keyAV(key kv.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: key.PK},
		attrSK: &types.AttributeValueMemberS{Value: key.SK},
	}
}

func toKey(av map[string]types.AttributeValue) (kv.Key, error) {
	pk, ok1 := av[attrPK].(*types.AttributeValueMemberS)
	sk, ok2 := av[attrSK].(*types.AttributeValueMemberS)
	if !ok1 || !ok2 {
		return kv.Key{}, fmt.Errorf("dynamo: item has no string pk/sk")
	}
	return kv.Key{PK: pk.Value, SK: sk.Value}, nil
}

func toItem(av map[string]types.AttributeValue) (kv.Item, error) {
	key, err := toKey(av)
	if err != nil {
		return kv.Item{}, err
	}

	attrs := make(map[string]any, len(av))
	if err := attributevalue.UnmarshalMap(av, &attrs); err != nil {
		return kv.Item{}, fmt.Errorf("unmarshal item: %w", err)
	}
	delete(attrs, attrPK)
	delete(attrs, attrSK)

	return kv.Item{Key: key, Attrs: attrs}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
