package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientIdleTTL is how long an idle client's bucket is kept.
const clientIdleTTL = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter provides per-client rate limiting using token bucket algorithm.
type RateLimiter struct {
	mu         sync.Mutex
	clients    map[string]*clientLimiter
	rateLimit  rate.Limit
	burstLimit int
	lastSweep  time.Time
	now        func() time.Time
}

// NewRateLimiter creates a new rate limiter with the specified rate and burst.
// rate is requests per second per client, burst is the maximum burst size.
func NewRateLimiter(ratePerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients:    make(map[string]*clientLimiter),
		rateLimit:  rate.Limit(ratePerSecond),
		burstLimit: burst,
		now:        time.Now,
	}
}

// Allow reports whether a request from client may proceed.
func (r *RateLimiter) Allow(client string) bool {
	return r.getLimiter(client).Allow()
}

// Clients returns the number of clients currently tracked.
func (r *RateLimiter) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// getLimiter returns the limiter for the given client, creating one if needed.
func (r *RateLimiter) getLimiter(client string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) > clientIdleTTL {
		for key, c := range r.clients {
			if now.Sub(c.lastSeen) > clientIdleTTL {
				delete(r.clients, key)
			}
		}
		r.lastSweep = now
	}

	c, exists := r.clients[client]
	if !exists {
		c = &clientLimiter{limiter: rate.NewLimiter(r.rateLimit, r.burstLimit)}
		r.clients[client] = c
	}
	c.lastSeen = now
	return c.limiter
}

// clientKey identifies the caller by remote IP, without the port.
func clientKey(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
