package service

import (
	"context"

	"stockbook/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// Create validates the submitted form and inserts a new product.
	Create(ctx context.Context, form model.ProductForm) (*model.Product, error)
}

// ClientService defines operations for client management.
type ClientService interface {
	// List retrieves all clients.
	List(ctx context.Context) ([]model.Client, error)

	// Create validates the submitted form and inserts a new client.
	Create(ctx context.Context, form model.ClientForm) (*model.Client, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// List retrieves all orders joined with client and product names.
	List(ctx context.Context) ([]model.OrderRow, error)

	// FormData supplies the client and product lists that populate the
	// add-order selection inputs.
	FormData(ctx context.Context) (*model.OrderFormData, error)

	// Create validates the submitted form, snapshots the product price
	// into the order total, and inserts the order.
	Create(ctx context.Context, form model.OrderForm) (*model.Order, error)
}

// ExpenseService defines operations for expense management.
type ExpenseService interface {
	// List retrieves all expenses.
	List(ctx context.Context) ([]model.Expense, error)

	// Create validates the submitted form and inserts a new expense.
	Create(ctx context.Context, form model.ExpenseForm) (*model.Expense, error)
}

// ReportService defines the profit report and dashboard aggregations.
type ReportService interface {
	// Compute aggregates all orders and expenses into a profit summary.
	Compute(ctx context.Context) (*model.Report, error)

	// Dashboard returns the per-entity row counts for the landing page.
	Dashboard(ctx context.Context) (*model.Dashboard, error)
}
