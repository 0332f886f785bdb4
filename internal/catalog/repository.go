package catalog

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

const keyFoodID = "FoodID"

type Repository interface {
	ListFoods(ctx context.Context) ([]*FoodRecord, error)
	// GetFood returns nil without error when the key does not exist.
	GetFood(ctx context.Context, foodID string) (*FoodRecord, error)
	PutFood(ctx context.Context, food *FoodRecord) error
}

type repository struct {
	api   dynamo.API
	table string
}

func NewRepository(api dynamo.API, table string) Repository {
	return &repository{api: api, table: table}
}

// ListFoods scans the whole catalog table, following LastEvaluatedKey.
func (r *repository) ListFoods(ctx context.Context) ([]*FoodRecord, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("table", r.table),
	)
	timer := metrics.StartTimer()

	paginator := dynamodb.NewScanPaginator(r.api, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})

	var (
		foods []*FoodRecord
		pages int
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.Error("catalog scan failed",
				zap.Int("pages_read", pages),
				zap.String("aws_error_code", dynamo.ErrorCode(err)),
				zap.Error(err),
			)
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		pages++

		for _, item := range page.Items {
			var food FoodRecord
			if err := attributevalue.UnmarshalMap(item, &food); err != nil {
				log.Warn("skipping undecodable catalog item", zap.Error(err))
				continue
			}
			foods = append(foods, &food)
		}
	}

	log.Debug("catalog scan done",
		zap.Int("pages", pages),
		zap.Int("items", len(foods)),
		zap.Duration("duration", timer.Duration()),
	)

	return foods, nil
}

func (r *repository) GetFood(ctx context.Context, foodID string) (*FoodRecord, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("table", r.table),
		zap.String("food_id", foodID),
	)

	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			keyFoodID: &types.AttributeValueMemberS{Value: foodID},
		},
	})
	if err != nil {
		log.Error("GetItem failed", zap.String("aws_error_code", dynamo.ErrorCode(err)), zap.Error(err))
		return nil, fmt.Errorf("get food %s: %w", foodID, err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var food FoodRecord
	if err := attributevalue.UnmarshalMap(out.Item, &food); err != nil {
		log.Error("failed to decode food item", zap.Error(err))
		return nil, fmt.Errorf("decode food %s: %w", foodID, err)
	}

	return &food, nil
}

func (r *repository) PutFood(ctx context.Context, food *FoodRecord) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("table", r.table),
	)

	item, err := attributevalue.MarshalMap(food)
	if err != nil {
		log.Error("failed to encode food item", zap.Error(err))
		return fmt.Errorf("encode food: %w", err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(" + keyFoodID + ")"),
	})
	if err != nil {
		log.Error("PutItem failed", zap.String("aws_error_code", dynamo.ErrorCode(err)), zap.Error(err))
		return fmt.Errorf("put food %s: %w", food.FoodID, err)
	}

	return nil
}
