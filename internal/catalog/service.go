package catalog

import (
	"context"
	"fmt"
	"fooodimp-be/internal/apperror"
	"fooodimp-be/internal/logger"
	"fooodimp-be/internal/metrics"
	"fooodimp-be/internal/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the catalog query surface plus single-item writes.
type Service interface {
	ListByCategory(ctx context.Context, category Category) ([]*FoodItem, error)
	GetFoodDetails(ctx context.Context, foodID string) (*FoodRecord, error)
	SubmitFood(ctx context.Context, input SubmitFoodInput) (*FoodRecord, error)
}

type service struct {
	repo    Repository
	metrics *metrics.Registry
	newID   func() string
}

func NewService(repo Repository, reg *metrics.Registry) Service {
	return &service{repo: repo, metrics: reg, newID: uuid.NewString}
}

// ListByCategory returns every item tagged exactly with category.
// An empty result is a NotFound error, never an empty list.
func (s *service) ListByCategory(ctx context.Context, category Category) ([]*FoodItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListByCategory"),
		zap.String("category", string(category)),
	)
	log.Info("ListByCategory started")
	s.metrics.Inc(metrics.CatalogQueries)

	foods, err := s.repo.ListFoods(ctx)
	if err != nil {
		log.Error("failed to list foods", zap.Error(err))
		s.metrics.Inc(metrics.StoreFailures)
		return nil, apperror.Store(msgAccessStore, err)
	}

	items := make([]*FoodItem, 0, len(foods))
	for _, f := range foods {
		if category.Matches(f.TitleName) {
			items = append(items, MapFoodRecordToItem(f))
		}
	}

	if len(items) == 0 {
		log.Info("no items in category", zap.Int("scanned", len(foods)))
		s.metrics.Inc(metrics.CatalogEmptyResults)
		return nil, apperror.NotFound(fmt.Sprintf("No %s food items found", category.Label()))
	}

	log.Info("ListByCategory success", zap.Int("count", len(items)), zap.Int("scanned", len(foods)))
	return items, nil
}

func (s *service) GetFoodDetails(ctx context.Context, foodID string) (*FoodRecord, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetFoodDetails"),
		zap.String("food_id", foodID),
	)

	food, err := s.repo.GetFood(ctx, foodID)
	if err != nil {
		log.Error("failed to get food", zap.Error(err))
		s.metrics.Inc(metrics.StoreFailures)
		return nil, apperror.Store(msgFetchItem, err)
	}
	if food == nil {
		log.Info("food not found")
		return nil, apperror.NotFound(msgItemNotFound)
	}

	return food, nil
}

// SubmitFood validates a catalog item and writes it under a fresh FoodID.
func (s *service) SubmitFood(ctx context.Context, input SubmitFoodInput) (*FoodRecord, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitFood"),
		zap.String("food_name", input.FoodName),
	)
	log.Info("SubmitFood started")

	if input.FoodName == "" {
		return nil, apperror.Validation(msgFoodNameEmpty)
	}
	if input.Quantity < 0 {
		return nil, apperror.Validation("invalid quantity for item " + input.FoodName)
	}

	rate, err := money.Parse(input.Price)
	if err != nil {
		log.Warn("invalid price", zap.String("price", input.Price))
		return nil, apperror.Validation("invalid price for item " + input.FoodName)
	}

	category := DefaultCategory
	if input.Category != "" {
		if category, err = ParseCategory(input.Category); err != nil {
			return nil, apperror.Validation(fmt.Sprintf("invalid category %q", input.Category))
		}
	}

	foodID := s.newID()
	ctx = logger.WithFields(ctx, zap.String("food_id", foodID))

	food := &FoodRecord{
		FoodID:    foodID,
		Title:     input.FoodName,
		Quantity:  input.Quantity,
		Rate:      rate,
		URL:       input.URL,
		TitleID:   input.TitleID,
		TitleName: string(category),
	}

	if err := s.repo.PutFood(ctx, food); err != nil {
		log.Error("failed to put food", zap.Error(err))
		s.metrics.Inc(metrics.StoreFailures)
		return nil, apperror.Store(msgSubmitItem, err)
	}

	s.metrics.Inc(metrics.FoodItemsSubmitted)
	log.Info("SubmitFood success", zap.String("food_id", food.FoodID), zap.String("category", food.TitleName))
	return food, nil
}
