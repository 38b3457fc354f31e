package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"drawer-cabinet/internal/handlers"
	"drawer-cabinet/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Layout   service.LayoutService
	Printing service.PrintService
	// Store is pinged by the health check.
	Store handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	drawersHandler := handlers.NewDrawersHandler(deps.Layout)
	drawerHandler := handlers.NewDrawerHandler(deps.Layout)
	printerHandler := handlers.NewPrinterHandler(deps.Printing)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/drawers", drawersHandler)
		r.Method(http.MethodPut, "/drawers", drawersHandler)
		r.Method(http.MethodGet, "/drawers/{id}", drawerHandler)
		r.Method(http.MethodPut, "/drawers/{id}", drawerHandler)
		r.Method(http.MethodPost, "/drawers/{id}/resize", handlers.NewResizeHandler(deps.Layout))
		r.Method(http.MethodGet, "/search", handlers.NewSearchHandler(deps.Layout))
		r.Method(http.MethodGet, "/stats", handlers.NewStatsHandler(deps.Layout))
		r.Method(http.MethodGet, "/printer", printerHandler)
		r.Method(http.MethodPut, "/printer", printerHandler)
		r.Method(http.MethodPost, "/print", handlers.NewPrintHandler(deps.Printing))
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.Store, deps.Layout))
	})

	// Serve the cabinet page at root
	r.Method(http.MethodGet, "/", handlers.NewPageHandler(deps.Layout))

	return r
}
