package gateway

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/storefront-vocabulary/internal/gateway/middleware"
	"github.com/saransh1220/storefront-vocabulary/internal/handler"
)

// RouterConfig holds the handlers and settings needed for routing
type RouterConfig struct {
	VocabularyHandler *handler.VocabularyHandler
	AllowedOrigins    string
	Logger            *slog.Logger
}

// SetupRoutes creates all application routes wrapped in the middleware chain
func SetupRoutes(config RouterConfig) http.Handler {
	router := NewRouter()

	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	h := config.VocabularyHandler
	vocabulary := router.Group("/vocabulary")
	vocabulary.HandleFunc("GET /", h.List)
	vocabulary.HandleFunc("GET /drift", h.Drift)
	vocabulary.HandleFunc("GET /{name}", h.Get)
	vocabulary.HandleFunc("POST /{name}/parse", h.Parse)

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("routes registered", "patterns", router.Patterns())

	var root http.Handler = router.Mux()
	root = middleware.PrometheusMiddleware(root)
	root = middleware.CORSMiddleware(root, config.AllowedOrigins)
	root = middleware.RequestLogger(root, logger)
	return root
}
