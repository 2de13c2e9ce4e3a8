package service

import (
	"context"
	"fmt"

	"loja-api/internal/model"
	"loja-api/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves all orders with their product details.
func (s *orderService) List(ctx context.Context) ([]model.OrderDetail, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// GetByID retrieves a single order by ID.
func (s *orderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// Create inserts an order. The product is checked before the insert; there
// is no foreign key, so a later product delete leaves the order in place.
func (s *orderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	exists, err := s.productRepo.Exists(ctx, req.ProductID)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", req.ProductID).Msg("failed to check product")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if !exists {
		s.logger.Warn().Int64("product_id", req.ProductID).Msg("order references unknown product")
		return nil, model.ErrOrderProductNotFound
	}

	order := &model.Order{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Int64("product_id", req.ProductID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("product_id", order.ProductID).
		Int("quantity", order.Quantity).
		Msg("order created successfully")

	return order, nil
}

// Delete removes an order.
func (s *orderService) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info().Int64("order_id", id).Msg("order deleted")

	return nil
}
