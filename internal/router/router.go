package router

import (
	"net/http"

	"stockbook/internal/handler"
	"stockbook/internal/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	reportHandler *handler.ReportHandler,
	productHandler *handler.ProductHandler,
	clientHandler *handler.ClientHandler,
	orderHandler *handler.OrderHandler,
	expenseHandler *handler.ExpenseHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Liveness endpoint
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	// Dashboard; the root pattern also catches unknown paths, the
	// handler 404s those.
	mux.HandleFunc("/", getOnly(reportHandler.Dashboard))

	// Products
	mux.HandleFunc("/inventory", getOnly(productHandler.List))
	mux.HandleFunc("/add_product", formRoute(productHandler.AddForm, productHandler.Add))

	// Clients
	mux.HandleFunc("/clients", getOnly(clientHandler.List))
	mux.HandleFunc("/add_client", formRoute(clientHandler.AddForm, clientHandler.Add))

	// Orders
	mux.HandleFunc("/orders", getOnly(orderHandler.List))
	mux.HandleFunc("/add_order", formRoute(orderHandler.AddForm, orderHandler.Add))

	// Expenses
	mux.HandleFunc("/expenses", getOnly(expenseHandler.List))
	mux.HandleFunc("/add_expense", formRoute(expenseHandler.AddForm, expenseHandler.Add))

	// Reports
	mux.HandleFunc("/reports", getOnly(reportHandler.Report))

	// Apply middleware in order: Recovery -> Logging -> Metrics
	var h http.Handler = mux
	h = middleware.Metrics(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

// getOnly rejects anything but GET.
func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

// formRoute dispatches GET to the form view and POST to the submission.
func formRoute(get, post http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			get(w, r)
		case http.MethodPost:
			post(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
