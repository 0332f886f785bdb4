package handler

import (
	"context"
	"fooodimp-be/internal/catalog"
	"fooodimp-be/internal/order"

	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListByCategory(ctx context.Context, category catalog.Category) ([]*catalog.FoodItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.FoodItem), args.Error(1)
}

func (m *MockCatalogService) GetFoodDetails(ctx context.Context, foodID string) (*catalog.FoodRecord, error) {
	args := m.Called(ctx, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FoodRecord), args.Error(1)
}

func (m *MockCatalogService) SubmitFood(ctx context.Context, input catalog.SubmitFoodInput) (*catalog.FoodRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FoodRecord), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) SubmitOrder(ctx context.Context, input order.SubmitOrderInput) (*order.Receipt, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Receipt), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Check(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
