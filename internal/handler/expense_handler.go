package handler

import (
	"errors"
	"net/http"

	"stockbook/internal/model"
	"stockbook/internal/service"

	"github.com/rs/zerolog"
)

// ExpenseHandler handles expense-related HTTP requests.
type ExpenseHandler struct {
	service  service.ExpenseService
	renderer Renderer
	flashes  Flash
	logger   zerolog.Logger
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(service service.ExpenseService, renderer Renderer, flashes Flash, logger zerolog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service:  service,
		renderer: renderer,
		flashes:  flashes,
		logger:   logger.With().Str("handler", "expense").Logger(),
	}
}

// List handles GET /expenses requests.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.List(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, "failed to retrieve expenses", h.renderer, h.logger)
		return
	}

	render(w, r, h.renderer, h.flashes, "expenses", "Expenses", expenses, h.logger)
}

// AddForm handles GET /add_expense requests.
func (h *ExpenseHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.renderer, h.flashes, "expense_form", "Add expense", nil, h.logger)
}

// Add handles POST /add_expense requests.
func (h *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "invalid form submission", h.renderer, h.logger)
		return
	}

	form := model.ExpenseForm{
		Name:        r.PostFormValue("name"),
		Amount:      r.PostFormValue("amount"),
		ExpenseDate: r.PostFormValue("expense_date"),
	}

	if _, err := h.service.Create(r.Context(), form); err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			redirectWithFlash(w, r, "/add_expense", domainErr.Message, h.flashes, h.logger)
			return
		}
		renderError(w, http.StatusInternalServerError, "failed to add expense", h.renderer, h.logger)
		return
	}

	redirectWithFlash(w, r, "/expenses", "Expense added successfully.", h.flashes, h.logger)
}
