package handler

import (
	"net/http"

	"stockbook/internal/service"

	"github.com/rs/zerolog"
)

// ReportHandler handles the dashboard and profit report pages.
type ReportHandler struct {
	service  service.ReportService
	renderer Renderer
	flashes  Flash
	logger   zerolog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service service.ReportService, renderer Renderer, flashes Flash, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service:  service,
		renderer: renderer,
		flashes:  flashes,
		logger:   logger.With().Str("handler", "report").Logger(),
	}
}

// Dashboard handles GET / requests. The root pattern matches every
// otherwise-unrouted path, so anything but "/" is a 404.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		renderError(w, http.StatusNotFound, "page not found", h.renderer, h.logger)
		return
	}

	counts, err := h.service.Dashboard(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, "failed to load dashboard", h.renderer, h.logger)
		return
	}

	render(w, r, h.renderer, h.flashes, "dashboard", "Dashboard", counts, h.logger)
}

// Report handles GET /reports requests.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Compute(r.Context())
	if err != nil {
		renderError(w, http.StatusInternalServerError, "failed to compute report", h.renderer, h.logger)
		return
	}

	render(w, r, h.renderer, h.flashes, "report", "Reports", report, h.logger)
}
