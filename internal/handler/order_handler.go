package handler

import (
	"errors"
	"net/http"

	"stockbook/internal/model"
	"stockbook/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service  service.OrderService
	renderer Renderer
	flashes  Flash
	logger   zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, renderer Renderer, flashes Flash, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		renderer: renderer,
		flashes:  flashes,
		logger:   logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, "failed to retrieve orders", h.renderer, h.logger)
		return
	}

	render(w, r, h.renderer, h.flashes, "orders", "Orders", orders, h.logger)
}

// AddForm handles GET /add_order requests. The form needs the client and
// product lists for its selection inputs.
func (h *OrderHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.FormData(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, "failed to load order form", h.renderer, h.logger)
		return
	}

	render(w, r, h.renderer, h.flashes, "order_form", "Add order", data, h.logger)
}

// Add handles POST /add_order requests. Validation failures flash a
// message and send the browser back to the form; nothing is inserted.
func (h *OrderHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "invalid form submission", h.renderer, h.logger)
		return
	}

	form := model.OrderForm{
		ClientID:  r.PostFormValue("client_id"),
		ProductID: r.PostFormValue("product_id"),
		Quantity:  r.PostFormValue("quantity"),
		OrderDate: r.PostFormValue("order_date"),
	}

	if _, err := h.service.Create(r.Context(), form); err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			redirectWithFlash(w, r, "/add_order", domainErr.Message, h.flashes, h.logger)
			return
		}
		renderError(w, http.StatusInternalServerError, "failed to add order", h.renderer, h.logger)
		return
	}

	redirectWithFlash(w, r, "/orders", "Order added successfully.", h.flashes, h.logger)
}
