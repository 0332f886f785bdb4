package order

import (
	"context"
	"fooodimp-be/internal/apperror"
	"fooodimp-be/internal/logger"
	"fooodimp-be/internal/metrics"
	"fooodimp-be/internal/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	SubmitOrder(ctx context.Context, input SubmitOrderInput) (*Receipt, error)
	GetOrder(ctx context.Context, orderNumber string) (*Order, error)
}

type service struct {
	repo    Repository
	metrics *metrics.Registry
	newID   func() string
}

func NewService(repo Repository, reg *metrics.Registry) Service {
	return &service{repo: repo, metrics: reg, newID: uuid.NewString}
}

// SubmitOrder validates the cart, rounds every amount half-up to two places
// and writes the order once. Nothing is written when validation fails.
func (s *service) SubmitOrder(ctx context.Context, input SubmitOrderInput) (*Receipt, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitOrder"),
		zap.String("customer_name", input.CustomerName),
		zap.Int("cart_items", len(input.CartItems)),
	)
	log.Info("SubmitOrder started")

	total, err := money.Parse(input.TotalAmount)
	if err != nil {
		log.Warn("invalid total amount", zap.String("total_amount", input.TotalAmount))
		s.metrics.Inc(metrics.OrdersRejected)
		return nil, apperror.Validation(msgInvalidTotal)
	}

	items, err := mapCartItems(input.CartItems)
	if err != nil {
		log.Warn("invalid cart item", zap.Error(err))
		s.metrics.Inc(metrics.OrdersRejected)
		return nil, err
	}

	orderNumber := s.newID()
	ctx = logger.WithFields(ctx, zap.String("order_number", orderNumber))

	o := &Order{
		OrderNumber:  orderNumber,
		CustomerName: input.CustomerName,
		CartItems:    items,
		TotalAmount:  total,
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		s.metrics.Inc(metrics.StoreFailures)
		return nil, apperror.Store(msgPlaceOrder, err)
	}

	s.metrics.Inc(metrics.OrdersPlaced)
	log.Info("SubmitOrder success",
		zap.String("order_number", o.OrderNumber),
		zap.String("total_amount", o.TotalAmount.String()),
	)

	return &Receipt{Message: MsgOrderPlaced, OrderNumber: o.OrderNumber}, nil
}

func (s *service) GetOrder(ctx context.Context, orderNumber string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetOrder"),
		zap.String("order_number", orderNumber),
	)

	o, err := s.repo.GetOrder(ctx, orderNumber)
	if err != nil {
		log.Error("failed to get order", zap.Error(err))
		s.metrics.Inc(metrics.StoreFailures)
		return nil, apperror.Store(msgFetchOrder, err)
	}
	if o == nil {
		log.Info("order not found")
		return nil, apperror.NotFound(msgOrderNotFound)
	}

	return o, nil
}
