package transport

import (
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	routeTransfer = "POST /transfer"
	routeDeploy   = "GET /deploy/{deploy_id}"
	routeBalance  = "GET /balance/{address}"

	// compressMinSize is the smallest response body that gets gzipped.
	compressMinSize = 32
)

// RouterConfig holds HTTP API limits.
type RouterConfig struct {
	BodyLimit      int64
	RequestTimeout time.Duration
	TrustProxy     bool
	// TransferLimiter throttles POST /transfer per client IP. Nil disables it.
	TransferLimiter *ClientLimiter
}

// DefaultRouterConfig returns a 1 MiB body limit and a 7 second timeout.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		BodyLimit:      1 << 20,
		RequestTimeout: 7 * time.Second,
	}
}

// NewRouter mounts h's routes behind CORS, gzip, request id, client ip,
// body limit and timeout middleware.
func NewRouter(h *Handler, metrics HTTPMetrics, logger *zap.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	mux := http.NewServeMux()

	transfer := http.Handler(http.HandlerFunc(h.Transfer))
	if cfg.TransferLimiter != nil {
		transfer = WithRateLimit(cfg.TransferLimiter, routeTransfer, metrics, h.now)(transfer)
	}
	mux.Handle(routeTransfer, WithAccessLog(routeTransfer, metrics, logger)(transfer))
	mux.Handle(routeDeploy, WithAccessLog(routeDeploy, metrics, logger)(http.HandlerFunc(h.Deploy)))
	mux.Handle(routeBalance, WithAccessLog(routeBalance, metrics, logger)(http.HandlerFunc(h.Balance)))

	var handler http.Handler = mux
	handler = WithTimeout(cfg.RequestTimeout)(handler)
	handler = WithBodyLimit(cfg.BodyLimit)(handler)
	handler = WithClientIP(cfg.TrustProxy)(handler)
	handler = WithRequestID(handler)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         int(time.Hour / time.Second),
	})
	return c.Handler(withCompression(handler))
}

// withCompression gzips responses for clients that accept it.
func withCompression(next http.Handler) http.Handler {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(compressMinSize))
	if err != nil {
		return gzhttp.GzipHandler(next)
	}
	return wrap(next)
}
