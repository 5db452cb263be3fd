package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Config selects the global middleware. A nil CORS disables that layer.
type Config struct {
	Logger         *zap.Logger
	CORS           *CORSConfig
	RequestTimeout time.Duration
	ExposeStack    bool
}

// Chain wraps a handler with the global middleware, outermost first:
// real client ip, request id, access log, panic recovery, CORS, timeout.
// Rate limiting and auth are applied to the admin API group by the router;
// provider webhooks must never see a 429.
func Chain(config *Config) func(http.Handler) http.Handler {
	layers := []func(http.Handler) http.Handler{
		chimw.RealIP,
		RequestID,
		Logger(config.Logger),
		Recovery(config.Logger, config.ExposeStack),
	}
	if config.CORS != nil {
		layers = append(layers, CORS(config.CORS))
	}
	layers = append(layers, Timeout(config.RequestTimeout))

	return func(handler http.Handler) http.Handler {
		for i := len(layers) - 1; i >= 0; i-- {
			handler = layers[i](handler)
		}
		return handler
	}
}
