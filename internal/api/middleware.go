package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mrz1836/addrgen/internal/config"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// HTTPRecorder records served requests; *metrics.Metrics satisfies it.
type HTTPRecorder interface {
	RecordHTTPRequest(route string, code int)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// routeTemplate returns the matched route pattern. Request paths can carry a
// seed phrase, so only the pattern is ever logged or used as a label.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// LoggingMiddleware logs and counts every request by route pattern and status.
func LoggingMiddleware(log *config.Logger, rec HTTPRecorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sr, r)

			route := routeTemplate(r)
			if rec != nil {
				rec.RecordHTTPRequest(route, sr.status)
			}
			log.With(config.LogLevelInfo, "request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", sr.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("client", clientKey(r)),
			)
		})
	}
}

// RecoveryMiddleware turns a handler panic into a 500 response.
func RecoveryMiddleware(log *config.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("panic recovered on %s %s: %v", r.Method, routeTemplate(r), err)
					writeText(w, http.StatusInternalServerError, msgInternal)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients that exceed their token bucket with 429.
// Health checks are never limited.
func RateLimitMiddleware(limiter *RateLimiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if routeTemplate(r) != routeHealthcheck && !limiter.Allow(clientKey(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(1))
				writeText(w, http.StatusTooManyRequests, addrerr.ErrRateLimited.Message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
