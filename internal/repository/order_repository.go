package repository

import (
	"context"
	"fmt"

	"stockbook/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// GetAllJoined retrieves all orders joined with client and product names.
// The inner join drops orders whose client or product row is missing; no
// delete path exists today, so every order joins.
func (r *orderRepository) GetAllJoined(ctx context.Context) ([]model.OrderRow, error) {
	query := `
		SELECT orders.id, clients.name, products.name, orders.quantity,
		       orders.total_price, orders.order_date
		FROM orders
		JOIN clients ON orders.client_id = clients.id
		JOIN products ON orders.product_id = products.id
		ORDER BY orders.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.OrderRow
	for rows.Next() {
		var o model.OrderRow
		err := rows.Scan(&o.ID, &o.ClientName, &o.ProductName, &o.Quantity, &o.TotalPrice, &o.OrderDate)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// Create inserts a new order and fills in its assigned ID.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO orders (client_id, product_id, quantity, total_price, order_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		order.ClientID, order.ProductID, order.Quantity, order.TotalPrice, order.OrderDate,
	).Scan(&order.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("client_id", order.ClientID).
			Int64("product_id", order.ProductID).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", order.ID).
		Msg("order created successfully")

	return nil
}

// SumTotalPrice returns the sum of total_price over all orders.
func (r *orderRepository) SumTotalPrice(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM orders`).Scan(&total)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to sum order totals")
		return 0, fmt.Errorf("failed to sum order totals: %w", err)
	}
	return total, nil
}

// Count returns the number of orders.
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count orders")
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
