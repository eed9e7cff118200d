// Package api serves the address operations over HTTP.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mrz1836/addrgen/internal/config"
	"github.com/mrz1836/addrgen/internal/metrics"
	"github.com/mrz1836/addrgen/internal/service/address"
)

// Route patterns.
const (
	routeIndex       = "/"
	routeHealthcheck = "/healthcheck"
	routeSegwit      = "/hd_segwit_address"
	routeSegwitPath  = "/hd_segwit_address/{seed_phrase}/{path:.+}"
	routeP2SH        = "/p2sh_address"
	routeP2SHPath    = "/p2sh_address/{n}/{m}/{public_keys}"
	routeMetrics     = "/metrics"
)

// RouterOptions holds the collaborators of the router.
type RouterOptions struct {
	Logger    *config.Logger
	Metrics   *metrics.Metrics
	RateLimit config.RateLimit
	// ExposeMetrics serves the Prometheus registry on /metrics.
	ExposeMetrics bool
}

// NewRouter builds the HTTP handler for svc.
func NewRouter(svc *address.Service, opts RouterOptions) http.Handler {
	if opts.Logger == nil {
		opts.Logger = config.NullLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.Global
	}

	h := &handlers{svc: svc}
	r := mux.NewRouter()
	// Derivation paths are data; an empty or "." segment must reach the
	// handler instead of being redirected to a cleaned path.
	r.SkipClean(true)

	// Middleware setup
	r.Use(LoggingMiddleware(opts.Logger, opts.Metrics))
	r.Use(RecoveryMiddleware(opts.Logger))
	if opts.RateLimit.RequestsPerSecond > 0 {
		r.Use(RateLimitMiddleware(NewRateLimiter(opts.RateLimit.RequestsPerSecond, opts.RateLimit.Burst)))
	}

	r.HandleFunc(routeIndex, h.index).Methods(http.MethodGet)
	r.HandleFunc(routeHealthcheck, h.healthcheck).Methods(http.MethodGet)

	// Segwit address from a seed phrase and derivation path
	r.HandleFunc(routeSegwitPath, h.segwitFromPath).Methods(http.MethodGet)
	r.HandleFunc(routeSegwit, h.segwitFromBody).Methods(http.MethodGet, http.MethodPost)

	// P2SH multisig address from n, m and public keys
	r.HandleFunc(routeP2SHPath, h.p2shFromPath).Methods(http.MethodGet)
	r.HandleFunc(routeP2SH, h.p2shFromBody).Methods(http.MethodGet, http.MethodPost)

	if opts.ExposeMetrics {
		r.Handle(routeMetrics, opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	return r
}
