package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
		Metrics(),
		CORS(h.allowedOrigins, h.logger),
	)

	mux.Handle("POST /upload", chain(http.HandlerFunc(h.Upload)))
	mux.Handle("POST /create-item", chain(http.HandlerFunc(h.CreateItem)))
	mux.Handle("POST /create-subitem", chain(http.HandlerFunc(h.CreateSubitem)))
	mux.Handle("GET /health", chain(http.HandlerFunc(h.Health)))

	// Preflight для POST маршрутов обрабатывает CORS middleware.
	mux.Handle("OPTIONS /", chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))
}
