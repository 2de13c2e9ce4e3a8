package service

import (
	"context"
	"fmt"

	"loja-api/internal/model"
	"loja-api/internal/repository"
	"loja-api/internal/storage"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo   repository.ProductRepository
	images        storage.ImageStore
	maxImageBytes int64
	logger        zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	images storage.ImageStore,
	maxImageBytes int64,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo:   productRepo,
		images:        images,
		maxImageBytes: maxImageBytes,
		logger:        logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create stores the image, if it is an accepted type, then inserts the product.
// A file that is not a jpeg or png is dropped and the product is created without an image.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest, image *storage.Image) (*model.Product, error) {
	if image != nil && image.Size > s.maxImageBytes {
		s.logger.Warn().
			Str("filename", image.Filename).
			Int64("size", image.Size).
			Int64("max_size", s.maxImageBytes).
			Msg("image too large")
		return nil, model.ErrImageTooLarge
	}

	product := &model.Product{
		Name:  req.Name,
		Price: req.Price,
	}

	if image != nil {
		if storage.IsAllowedImage(image.ContentType) {
			location, err := s.images.Save(ctx, *image)
			if err != nil {
				s.logger.Error().Err(err).Str("filename", image.Filename).Msg("failed to store product image")
				return nil, fmt.Errorf("failed to store product image: %w", err)
			}
			product.ImagePath = &location
		} else {
			s.logger.Warn().
				Str("filename", image.Filename).
				Str("content_type", image.ContentType).
				Msg("ignoring upload that is not a jpeg or png image")
		}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Bool("has_image", product.ImagePath != nil).
		Msg("product created successfully")

	return product, nil
}

// Update overwrites a product's name and price.
func (s *productService) Update(ctx context.Context, req *model.UpdateProductRequest) error {
	product := &model.Product{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Int64("product_id", req.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Int64("product_id", req.ID).Msg("product updated")

	return nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}
