package service

import (
	"context"
	"fmt"

	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/rs/zerolog"
)

// reportService implements ReportService.
type reportService struct {
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	orderRepo   repository.OrderRepository
	expenseRepo repository.ExpenseRepository
	logger      zerolog.Logger
}

// NewReportService creates a new report service.
func NewReportService(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	orderRepo repository.OrderRepository,
	expenseRepo repository.ExpenseRepository,
	logger zerolog.Logger,
) ReportService {
	return &reportService{
		productRepo: productRepo,
		clientRepo:  clientRepo,
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		logger:      logger.With().Str("service", "report").Logger(),
	}
}

// Compute aggregates all orders and expenses into a profit summary.
// Empty tables contribute zero, so a fresh store reports all zeros.
func (s *reportService) Compute(ctx context.Context) (*model.Report, error) {
	totalSales, err := s.orderRepo.SumTotalPrice(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute total sales")
		return nil, fmt.Errorf("failed to compute total sales: %w", err)
	}

	totalExpenses, err := s.expenseRepo.SumAmount(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to compute total expenses")
		return nil, fmt.Errorf("failed to compute total expenses: %w", err)
	}

	report := &model.Report{
		TotalSales:    totalSales,
		TotalExpenses: totalExpenses,
		NetProfit:     totalSales - totalExpenses,
	}

	s.logger.Debug().
		Float64("total_sales", report.TotalSales).
		Float64("total_expenses", report.TotalExpenses).
		Float64("net_profit", report.NetProfit).
		Msg("report computed")

	return report, nil
}

// Dashboard returns the per-entity row counts for the landing page.
func (s *reportService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	clients, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	expenses, err := s.expenseRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count expenses: %w", err)
	}

	return &model.Dashboard{
		Products: products,
		Clients:  clients,
		Orders:   orders,
		Expenses: expenses,
	}, nil
}
