package service

import (
	"context"
	"fmt"
	"strconv"

	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves all orders joined with client and product names.
func (s *orderService) List(ctx context.Context) ([]model.OrderRow, error) {
	orders, err := s.orderRepo.GetAllJoined(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// FormData supplies the client and product lists for the add-order form.
func (s *orderService) FormData(ctx context.Context) (*model.OrderFormData, error) {
	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load clients for order form")
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products for order form")
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	return &model.OrderFormData{
		Clients:  clients,
		Products: products,
	}, nil
}

// Create validates the submitted form and inserts the order.
//
// The total is the product price at submission time multiplied by the
// quantity. The price read and the order insert are two independent
// statements: a price change landing between them freezes the price the
// read observed into this order.
func (s *orderService) Create(ctx context.Context, form model.OrderForm) (*model.Order, error) {
	if form.ClientID == "" {
		return nil, model.NewMissingFieldError("client_id")
	}
	if form.ProductID == "" {
		return nil, model.NewMissingFieldError("product_id")
	}
	if form.Quantity == "" {
		return nil, model.NewMissingFieldError("quantity")
	}
	if form.OrderDate == "" {
		return nil, model.NewMissingFieldError("order_date")
	}

	clientID, err := strconv.ParseInt(form.ClientID, 10, 64)
	if err != nil {
		s.logger.Warn().Str("client_id", form.ClientID).Msg("unparseable client id")
		return nil, model.NewParseFailureError("client_id")
	}

	productID, err := strconv.ParseInt(form.ProductID, 10, 64)
	if err != nil {
		s.logger.Warn().Str("product_id", form.ProductID).Msg("unparseable product id")
		return nil, model.NewParseFailureError("product_id")
	}

	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil {
		s.logger.Warn().Str("quantity", form.Quantity).Msg("unparseable order quantity")
		return nil, model.NewParseFailureError("quantity")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to look up product")
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		s.logger.Warn().Int64("product_id", productID).Msg("order references unknown product")
		return nil, model.ErrProductNotFound
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		s.logger.Error().Err(err).Int64("client_id", clientID).Msg("failed to look up client")
		return nil, fmt.Errorf("failed to look up client: %w", err)
	}
	if client == nil {
		s.logger.Warn().Int64("client_id", clientID).Msg("order references unknown client")
		return nil, model.ErrClientNotFound
	}

	order := &model.Order{
		ClientID:   clientID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: product.Price * float64(quantity),
		OrderDate:  form.OrderDate,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().
			Err(err).
			Int64("client_id", clientID).
			Int64("product_id", productID).
			Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Int64("client_id", clientID).
		Int64("product_id", productID).
		Float64("total_price", order.TotalPrice).
		Msg("order created")

	return order, nil
}
