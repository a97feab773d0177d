package repository

import (
	"context"
	"fmt"

	"stockbook/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// expenseRepository implements the ExpenseRepository interface using PostgreSQL.
type expenseRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewExpenseRepository creates a new PostgreSQL-backed expense repository.
func NewExpenseRepository(pool *pgxpool.Pool, logger zerolog.Logger) ExpenseRepository {
	return &expenseRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "expense").Logger(),
	}
}

// GetAll retrieves all expenses ordered by id.
func (r *expenseRepository) GetAll(ctx context.Context) ([]model.Expense, error) {
	query := `
		SELECT id, name, amount, expense_date
		FROM expenses
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query expenses")
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		err := rows.Scan(&e.ID, &e.Name, &e.Amount, &e.ExpenseDate)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan expense row")
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating expense rows")
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// Create inserts a new expense and fills in its assigned ID.
func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	query := `
		INSERT INTO expenses (name, amount, expense_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		expense.Name, expense.Amount, expense.ExpenseDate,
	).Scan(&expense.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("name", expense.Name).
			Msg("failed to create expense")
		return fmt.Errorf("failed to create expense: %w", err)
	}

	r.logger.Debug().
		Int64("expense_id", expense.ID).
		Str("name", expense.Name).
		Msg("expense created successfully")

	return nil
}

// SumAmount returns the sum of amount over all expenses.
func (r *expenseRepository) SumAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to sum expense amounts")
		return 0, fmt.Errorf("failed to sum expense amounts: %w", err)
	}
	return total, nil
}

// Count returns the number of expenses.
func (r *expenseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count expenses")
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
