package catalog

import (
	"context"
	"errors"
	"fooodimp-be/internal/dynamo/dynamotest"
	"fooodimp-be/internal/money"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustAmount(s string) money.Amount {
	return money.MustParse(s)
}

func foodItem(id, title, tag, rate string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"FoodID":    &types.AttributeValueMemberS{Value: id},
		"title":     &types.AttributeValueMemberS{Value: title},
		"quantity":  &types.AttributeValueMemberN{Value: "1"},
		"rate":      &types.AttributeValueMemberN{Value: rate},
		"url":       &types.AttributeValueMemberS{Value: "https://img/" + id},
		"titleId":   &types.AttributeValueMemberS{Value: "t-" + id},
		"titlename": &types.AttributeValueMemberS{Value: tag},
	}
}

func firstPage(in *dynamodb.ScanInput) bool {
	return in.ExclusiveStartKey == nil && aws.ToString(in.TableName) == "dataa"
}

func TestRepository_ListFoods(t *testing.T) {
	ctx := context.Background()

	t.Run("Follows pagination", func(t *testing.T) {
		api := new(dynamotest.MockAPI)
		repo := NewRepository(api, "dataa")
		lastKey := map[string]types.AttributeValue{"FoodID": &types.AttributeValueMemberS{Value: "f-2"}}

		api.On("Scan", ctx, mock.MatchedBy(firstPage)).Return(&dynamodb.ScanOutput{
			Items: []map[string]types.AttributeValue{
				foodItem("f-1", "Pizza", "ItalianFood", "9.5"),
				foodItem("f-2", "Dal", "IndianFood", "6"),
			},
			LastEvaluatedKey: lastKey,
		}, nil).Once()
		api.On("Scan", ctx, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
			return assert.ObjectsAreEqual(lastKey, in.ExclusiveStartKey)
		})).Return(&dynamodb.ScanOutput{
			Items: []map[string]types.AttributeValue{
				foodItem("f-3", "Kimchi", "korean", "4.25"),
			},
		}, nil).Once()

		foods, err := repo.ListFoods(ctx)

		require.NoError(t, err)
		require.Len(t, foods, 3)
		assert.Equal(t, "f-1", foods[0].FoodID)
		assert.Equal(t, "Pizza", foods[0].Title)
		assert.Equal(t, "9.50", foods[0].Rate.String())
		assert.Equal(t, "korean", foods[2].TitleName)
		api.AssertExpectations(t)
	})

	t.Run("Scan error", func(t *testing.T) {
		api := new(dynamotest.MockAPI)
		repo := NewRepository(api, "dataa")
		api.On("Scan", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

		foods, err := repo.ListFoods(ctx)

		assert.Nil(t, foods)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Skips undecodable items", func(t *testing.T) {
		api := new(dynamotest.MockAPI)
		repo := NewRepository(api, "dataa")
		bad := foodItem("f-9", "Broken", "korean", "1")
		bad["rate"] = &types.AttributeValueMemberBOOL{Value: true}

		api.On("Scan", ctx, mock.Anything).Return(&dynamodb.ScanOutput{
			Items: []map[string]types.AttributeValue{bad, foodItem("f-1", "Tteok", "korean", "3")},
		}, nil).Once()

		foods, err := repo.ListFoods(ctx)

		require.NoError(t, err)
		require.Len(t, foods, 1)
		assert.Equal(t, "f-1", foods[0].FoodID)
	})
}

func TestRepository_GetFood(t *testing.T) {
	ctx := context.Background()
	input := &dynamodb.GetItemInput{
		TableName: aws.String("dataa"),
		Key: map[string]types.AttributeValue{
			"FoodID": &types.AttributeValueMemberS{Value: "f-1"},
		},
	}

	t.Run("Found", func(t *testing.T) {
		api := new(dynamotest.MockAPI)
		api.On("GetItem", ctx, input).Return(&dynamodb.GetItemOutput{
			Item: foodItem("f-1", "Pizza", "ItalianFood", "9.5"),
		}, nil)

		food, err := NewRepository(api, "dataa").GetFood(ctx, "f-1")

		require.NoError(t, err)
		require.NotNil(t, food)
		assert.Equal(t, "Pizza", food.Title)
		assert.Equal(t, "ItalianFood", food.TitleName)
	})

	t.Run("Missing", func(t *testing.T) {
		api := new(dynamotest.MockAPI)
		api.On("GetItem", ctx, input).Return(&dynamodb.GetItemOutput{}, nil)

		food, err := NewRepository(api, "dataa").GetFood(ctx, "f-1")

		assert.NoError(t, err)
		assert.Nil(t, food)
	})

	t.Run("Store error", func(t *testing.T) {
		api := new(dynamotest.MockAPI)
		api.On("GetItem", ctx, input).Return(nil, errors.New("throttled"))

		food, err := NewRepository(api, "dataa").GetFood(ctx, "f-1")

		assert.Error(t, err)
		assert.Nil(t, food)
	})
}

func TestRepository_PutFood(t *testing.T) {
	ctx := context.Background()
	food := &FoodRecord{
		FoodID:    "f-1",
		Title:     "Bulgogi",
		Quantity:  2,
		Rate:      mustAmount("15.255"),
		URL:       "https://img/bulgogi",
		TitleID:   "k-7",
		TitleName: "korean",
	}

	t.Run("Success", func(t *testing.T) {
		api := new(dynamotest.MockAPI)
		var captured *dynamodb.PutItemInput
		api.On("PutItem", ctx, mock.Anything).
			Run(func(args mock.Arguments) { captured = args.Get(1).(*dynamodb.PutItemInput) }).
			Return(&dynamodb.PutItemOutput{}, nil)

		err := NewRepository(api, "dataa").PutFood(ctx, food)

		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, "dataa", aws.ToString(captured.TableName))
		assert.Equal(t, "attribute_not_exists(FoodID)", aws.ToString(captured.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "f-1"}, captured.Item["FoodID"])
		assert.Equal(t, &types.AttributeValueMemberN{Value: "15.26"}, captured.Item["rate"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "korean"}, captured.Item["titlename"])
	})

	t.Run("Store error", func(t *testing.T) {
		api := new(dynamotest.MockAPI)
		api.On("PutItem", ctx, mock.Anything).Return(nil, errors.New("access denied"))

		err := NewRepository(api, "dataa").PutFood(ctx, food)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})
}
