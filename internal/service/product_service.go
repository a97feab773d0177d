package service

import (
	"context"
	"fmt"
	"strconv"

	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// Create validates the submitted form and inserts a new product.
// Description is optional; the remaining fields are required and the
// numeric ones must parse.
func (s *productService) Create(ctx context.Context, form model.ProductForm) (*model.Product, error) {
	if form.Name == "" {
		return nil, model.NewMissingFieldError("name")
	}
	if form.Quantity == "" {
		return nil, model.NewMissingFieldError("quantity")
	}
	if form.Price == "" {
		return nil, model.NewMissingFieldError("price")
	}

	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil {
		s.logger.Warn().Str("quantity", form.Quantity).Msg("unparseable product quantity")
		return nil, model.NewParseFailureError("quantity")
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil {
		s.logger.Warn().Str("price", form.Price).Msg("unparseable product price")
		return nil, model.NewParseFailureError("price")
	}

	product := &model.Product{
		Name:        form.Name,
		Description: form.Description,
		Quantity:    quantity,
		Price:       price,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", form.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}
