package handler

import (
	"errors"
	"net/http"

	"stockbook/internal/model"
	"stockbook/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service  service.ProductService
	renderer Renderer
	flashes  Flash
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, renderer Renderer, flashes Flash, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		renderer: renderer,
		flashes:  flashes,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /inventory requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, "failed to retrieve products", h.renderer, h.logger)
		return
	}

	render(w, r, h.renderer, h.flashes, "products", "Inventory", products, h.logger)
}

// AddForm handles GET /add_product requests.
func (h *ProductHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.renderer, h.flashes, "product_form", "Add product", nil, h.logger)
}

// Add handles POST /add_product requests.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "invalid form submission", h.renderer, h.logger)
		return
	}

	form := model.ProductForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Quantity:    r.PostFormValue("quantity"),
		Price:       r.PostFormValue("price"),
	}

	if _, err := h.service.Create(r.Context(), form); err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			redirectWithFlash(w, r, "/add_product", domainErr.Message, h.flashes, h.logger)
			return
		}
		renderError(w, http.StatusInternalServerError, "failed to add product", h.renderer, h.logger)
		return
	}

	redirectWithFlash(w, r, "/inventory", "Product added successfully.", h.flashes, h.logger)
}
