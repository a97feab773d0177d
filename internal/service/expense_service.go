package service

import (
	"context"
	"fmt"
	"strconv"

	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/rs/zerolog"
)

// expenseService implements ExpenseService.
type expenseService struct {
	expenseRepo repository.ExpenseRepository
	logger      zerolog.Logger
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo repository.ExpenseRepository, logger zerolog.Logger) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		logger:      logger.With().Str("service", "expense").Logger(),
	}
}

// List retrieves all expenses.
func (s *expenseService) List(ctx context.Context) ([]model.Expense, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	s.logger.Debug().Int("count", len(expenses)).Msg("retrieved expenses")

	return expenses, nil
}

// Create validates the submitted form and inserts a new expense.
func (s *expenseService) Create(ctx context.Context, form model.ExpenseForm) (*model.Expense, error) {
	if form.Name == "" {
		return nil, model.NewMissingFieldError("name")
	}
	if form.Amount == "" {
		return nil, model.NewMissingFieldError("amount")
	}
	if form.ExpenseDate == "" {
		return nil, model.NewMissingFieldError("expense_date")
	}

	amount, err := strconv.ParseFloat(form.Amount, 64)
	if err != nil {
		s.logger.Warn().Str("amount", form.Amount).Msg("unparseable expense amount")
		return nil, model.NewParseFailureError("amount")
	}

	expense := &model.Expense{
		Name:        form.Name,
		Amount:      amount,
		ExpenseDate: form.ExpenseDate,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		s.logger.Error().Err(err).Str("name", form.Name).Msg("failed to create expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.logger.Info().
		Int64("expense_id", expense.ID).
		Str("name", expense.Name).
		Float64("amount", expense.Amount).
		Msg("expense created")

	return expense, nil
}
