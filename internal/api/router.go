// Package api exposes the majority vote over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/majority/pkg/clientip"
	"github.com/dmitrymomot/majority/pkg/httpserver"
	"github.com/dmitrymomot/majority/pkg/logger"
	"github.com/dmitrymomot/majority/pkg/ratelimiter"
	"github.com/dmitrymomot/majority/pkg/requestid"
)

const defaultMaxBodyBytes int64 = 1 << 20

// Option configures the router.
type Option func(*router)

type router struct {
	handler
	limiter    *ratelimiter.Bucket
	trustProxy bool
}

// WithMaxBodyBytes limits request bodies. Non-positive values keep the 1 MiB default.
func WithMaxBodyBytes(n int64) Option {
	return func(h *router) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithDefaultValidation sets whether requests that omit "validate" are validated.
func WithDefaultValidation(validate bool) Option {
	return func(h *router) { h.validate = validate }
}

// WithRateLimiter limits POST /v1/majority per client address. Denied
// requests get 429 with the rate_limited code.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(h *router) { h.limiter = b }
}

// WithTrustProxy resolves client addresses from proxy headers.
func WithTrustProxy(trust bool) Option {
	return func(h *router) { h.trustProxy = trust }
}

// NewRouter returns the API handler:
//
//	POST /v1/majority  find the majority element of "items"
//	GET  /health       liveness probe
func NewRouter(log *slog.Logger, opts ...Option) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	cfg := &router{handler: handler{
		log:          log.With(logger.Component("api")),
		maxBodyBytes: defaultMaxBodyBytes,
		validate:     true,
	}}
	for _, opt := range opts {
		opt(cfg)
	}
	h := &cfg.handler

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(cfg.trustProxy))
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(h.log))
	r.Group(func(r chi.Router) {
		if cfg.limiter != nil {
			r.Use(ratelimiter.Middleware(cfg.limiter, clientKey, http.HandlerFunc(h.rateLimited)))
		}
		r.Post("/v1/majority", h.find)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})
	return r
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

func (h *handler) rateLimited(w http.ResponseWriter, r *http.Request) {
	h.log.InfoContext(r.Context(), "rate limit exceeded")
	writeError(w, http.StatusTooManyRequests, codeRateLimited, "rate limit exceeded, retry later")
}
