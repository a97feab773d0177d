package handler

import (
	"errors"
	"net/http"

	"stockbook/internal/model"
	"stockbook/internal/service"

	"github.com/rs/zerolog"
)

// ClientHandler handles client-related HTTP requests.
type ClientHandler struct {
	service  service.ClientService
	renderer Renderer
	flashes  Flash
	logger   zerolog.Logger
}

// NewClientHandler creates a new client handler.
func NewClientHandler(service service.ClientService, renderer Renderer, flashes Flash, logger zerolog.Logger) *ClientHandler {
	return &ClientHandler{
		service:  service,
		renderer: renderer,
		flashes:  flashes,
		logger:   logger.With().Str("handler", "client").Logger(),
	}
}

// List handles GET /clients requests.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, "failed to retrieve clients", h.renderer, h.logger)
		return
	}

	render(w, r, h.renderer, h.flashes, "clients", "Clients", clients, h.logger)
}

// AddForm handles GET /add_client requests.
func (h *ClientHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.renderer, h.flashes, "client_form", "Add client", nil, h.logger)
}

// Add handles POST /add_client requests.
func (h *ClientHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, http.StatusBadRequest, "invalid form submission", h.renderer, h.logger)
		return
	}

	form := model.ClientForm{
		Name:  r.PostFormValue("name"),
		Phone: r.PostFormValue("phone"),
		Email: r.PostFormValue("email"),
	}

	if _, err := h.service.Create(r.Context(), form); err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			redirectWithFlash(w, r, "/add_client", domainErr.Message, h.flashes, h.logger)
			return
		}
		renderError(w, http.StatusInternalServerError, "failed to add client", h.renderer, h.logger)
		return
	}

	redirectWithFlash(w, r, "/clients", "Client added successfully.", h.flashes, h.logger)
}
