package repository

import (
	"context"

	"loja-api/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Exists reports whether a product with the ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a product and sets its generated ID.
	Create(ctx context.Context, product *model.Product) error

	// Update overwrites name and price. A missing ID is not an error.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product. A missing ID is not an error.
	Delete(ctx context.Context, id int64) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// List retrieves all orders joined with their products.
	List(ctx context.Context) ([]model.OrderDetail, error)

	// GetByID retrieves a single order by its ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Order, error)

	// Create inserts an order and sets its generated ID.
	Create(ctx context.Context, order *model.Order) error

	// Delete removes an order. A missing ID is not an error.
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// GetByEmail retrieves a user by email. Returns nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Create inserts a user and sets its generated ID.
	// Returns model.ErrEmailAlreadyRegistered on a duplicate email.
	Create(ctx context.Context, user *model.User) error
}
