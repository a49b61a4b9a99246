package order

import (
	"context"
	"errors"
	"strings"

	"supplydesk/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetOrders(ctx context.Context, userID *int64) ([]*Order, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (int64, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status Status) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetOrders returns orders with their items attached. userID nil means all
// orders (admin view).
func (s *service) GetOrders(ctx context.Context, userID *int64) ([]*Order, error) {
	orders, err := s.repo.FetchOrders(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrFailedFetchOrders, err)
	}
	if len(orders) == 0 {
		return []*Order{}, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	items, err := s.repo.FetchOrderItems(ctx, ids)
	if err != nil {
		return nil, errors.Join(ErrFailedFetchOrders, err)
	}

	for _, o := range orders {
		o.Items = items[o.ID]
		if o.Items == nil {
			o.Items = []OrderItem{}
		}
	}

	return orders, nil
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Int64("user_id", input.UserID),
	)

	if input.UserID == 0 {
		return 0, ErrMissingUser
	}
	if len(input.Items) == 0 {
		return 0, ErrEmptyItems
	}

	input.EmployeeName = strings.TrimSpace(input.EmployeeName)

	for i, it := range input.Items {
		if it.Quantity < 1 {
			log.Warn("invalid quantity", zap.Int("index", i), zap.Int("quantity", it.Quantity))
			return 0, ErrInvalidQuantity
		}
		if !it.Unit.Valid() {
			log.Warn("invalid unit", zap.Int("index", i), zap.String("unit", string(it.Unit)))
			return 0, ErrInvalidUnit
		}
	}

	orderID, err := s.repo.CreateOrderTx(ctx, input)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return 0, err
		}
		return 0, errors.Join(ErrFailedCreateOrder, err)
	}

	log.Info("create order success", zap.Int64("order_id", orderID))
	return orderID, nil
}

// UpdateOrderStatus moves an order one stage forward. Any other move is
// rejected with ErrInvalidTransition.
func (s *service) UpdateOrderStatus(ctx context.Context, orderID int64, status Status) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrderStatus"),
		zap.Int64("order_id", orderID),
		zap.String("target_status", string(status)),
	)

	if orderID == 0 {
		return ErrOrderIDRequired
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}

	current, err := s.repo.GetOrderStatus(ctx, orderID)
	if err != nil {
		return err
	}

	if !CanTransition(current, status) {
		log.Warn("rejected status transition", zap.String("current_status", string(current)))
		return ErrInvalidTransition
	}

	if err := s.repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return err
		}
		return errors.Join(ErrFailedUpdateOrder, err)
	}

	log.Info("order status updated", zap.String("previous_status", string(current)))
	return nil
}
