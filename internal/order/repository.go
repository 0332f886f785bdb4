package order

import (
	"context"
	"fmt"
	"fooodimp-be/internal/dynamo"
	"fooodimp-be/internal/logger"
	"fooodimp-be/internal/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const keyOrderNumber = "orderNumber"

type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	// GetOrder returns nil without error when the key does not exist.
	GetOrder(ctx context.Context, orderNumber string) (*Order, error)
}

type repository struct {
	api   dynamo.API
	table string
}

func NewRepository(api dynamo.API, table string) Repository {
	return &repository{api: api, table: table}
}

// CreateOrder writes the order as a single item. An existing order number is
// never overwritten.
func (r *repository) CreateOrder(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("table", r.table),
	)
	timer := metrics.StartTimer()

	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		log.Error("failed to encode order", zap.Error(err))
		return fmt.Errorf("encode order: %w", err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(" + keyOrderNumber + ")"),
	})
	if err != nil {
		log.Error("PutItem failed",
			zap.String("aws_error_code", dynamo.ErrorCode(err)),
			zap.Duration("duration", timer.Duration()),
			zap.Error(err),
		)
		return fmt.Errorf("put order %s: %w", o.OrderNumber, err)
	}

	log.Debug("order written", zap.Duration("duration", timer.Duration()))
	return nil
}

func (r *repository) GetOrder(ctx context.Context, orderNumber string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("table", r.table),
		zap.String("order_number", orderNumber),
	)

	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			keyOrderNumber: &types.AttributeValueMemberS{Value: orderNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Error("GetItem failed", zap.String("aws_error_code", dynamo.ErrorCode(err)), zap.Error(err))
		return nil, fmt.Errorf("get order %s: %w", orderNumber, err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		log.Error("failed to decode order", zap.Error(err))
		return nil, fmt.Errorf("decode order %s: %w", orderNumber, err)
	}
	if o.CartItems == nil {
		o.CartItems = []CartItem{}
	}

	return &o, nil
}
