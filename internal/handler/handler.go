package handler

import (
	"io"
	"net/http"

	"stockbook/internal/view"

	"github.com/rs/zerolog"
)

// Renderer renders a named view with page data.
type Renderer interface {
	Render(w io.Writer, name string, page view.Page) error
}

// Flash sets and drains one-shot status messages.
type Flash interface {
	Add(w http.ResponseWriter, r *http.Request, message string) error
	Drain(w http.ResponseWriter, r *http.Request) []string
}

// render writes the named view, draining pending flash messages into it.
func render(w http.ResponseWriter, r *http.Request, renderer Renderer, flashes Flash, name, title string, data any, logger zerolog.Logger) {
	page := view.Page{
		Title:   title,
		Flashes: flashes.Drain(w, r),
		Data:    data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, name, page); err != nil {
		// Headers are already out; all we can do is log.
		logger.Error().Err(err).Str("view", name).Msg("failed to render view")
	}
}

// renderError writes the generic error page with the given status code.
func renderError(w http.ResponseWriter, status int, message string, renderer Renderer, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := renderer.Render(w, "error", view.Page{Title: "Error", Data: message}); err != nil {
		logger.Error().Err(err).Msg("failed to render error view")
	}
}

// redirectWithFlash stores a one-shot message and redirects with 303 so
// the browser re-GETs the target.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string, flashes Flash, logger zerolog.Logger) {
	if err := flashes.Add(w, r, message); err != nil {
		logger.Warn().Err(err).Msg("failed to store flash message")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
