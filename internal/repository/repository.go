package repository

import (
	"context"

	"stockbook/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves all products ordered by id.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and fills in its assigned ID.
	Create(ctx context.Context, product *model.Product) error

	// Count returns the number of products.
	Count(ctx context.Context) (int64, error)
}

// ClientRepository defines the interface for client data access operations.
type ClientRepository interface {
	// GetAll retrieves all clients ordered by id.
	GetAll(ctx context.Context) ([]model.Client, error)

	// GetByID retrieves a single client by its ID.
	// Returns (nil, nil) when the client does not exist.
	GetByID(ctx context.Context, id int64) (*model.Client, error)

	// Create inserts a new client and fills in its assigned ID.
	Create(ctx context.Context, client *model.Client) error

	// Count returns the number of clients.
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// GetAllJoined retrieves all orders joined with client and product names.
	GetAllJoined(ctx context.Context) ([]model.OrderRow, error)

	// Create inserts a new order and fills in its assigned ID.
	Create(ctx context.Context, order *model.Order) error

	// SumTotalPrice returns the sum of total_price over all orders,
	// 0 when there are none.
	SumTotalPrice(ctx context.Context) (float64, error)

	// Count returns the number of orders.
	Count(ctx context.Context) (int64, error)
}

// ExpenseRepository defines the interface for expense data access operations.
type ExpenseRepository interface {
	// GetAll retrieves all expenses ordered by id.
	GetAll(ctx context.Context) ([]model.Expense, error)

	// Create inserts a new expense and fills in its assigned ID.
	Create(ctx context.Context, expense *model.Expense) error

	// SumAmount returns the sum of amount over all expenses,
	// 0 when there are none.
	SumAmount(ctx context.Context) (float64, error)

	// Count returns the number of expenses.
	Count(ctx context.Context) (int64, error)
}
