package service

import (
	"context"

	"loja-api/internal/model"
	"loja-api/internal/storage"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create stores the optional image and inserts the product.
	Create(ctx context.Context, req *model.CreateProductRequest, image *storage.Image) (*model.Product, error)

	// Update overwrites a product's name and price without checking it exists.
	Update(ctx context.Context, req *model.UpdateProductRequest) error

	// Delete removes a product without checking it exists.
	Delete(ctx context.Context, id int64) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// List retrieves all orders with their product details.
	List(ctx context.Context) ([]model.OrderDetail, error)

	// GetByID retrieves a single order by ID.
	GetByID(ctx context.Context, id int64) (*model.Order, error)

	// Create inserts an order after checking its product exists.
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)

	// Delete removes an order without checking it exists.
	Delete(ctx context.Context, id int64) error
}

// UserService defines registration and login.
type UserService interface {
	// Register creates a user with a hashed password.
	Register(ctx context.Context, req *model.CredentialsRequest) (*model.User, error)

	// Login checks the credentials and returns a signed token.
	Login(ctx context.Context, req *model.CredentialsRequest) (string, error)
}
