package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(10, 10) // 10/sec with burst of 10

	// Should allow initial burst
	for i := 0; i < 10; i++ {
		assert.True(t, rl.Allow("203.0.113.7"), "should allow request %d in burst", i)
	}

	// 11th request should be denied (burst exhausted)
	assert.False(t, rl.Allow("203.0.113.7"))
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(0.001, 2)

	assert.True(t, rl.Allow("client1"))
	assert.True(t, rl.Allow("client1"))
	assert.False(t, rl.Allow("client1")) // exhausted

	// client2 is independent
	assert.True(t, rl.Allow("client2"))
	assert.True(t, rl.Allow("client2"))
	assert.Equal(t, 2, rl.Clients())
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.Allow("idle")
	now = now.Add(time.Minute)
	rl.Allow("active")
	assert.Equal(t, 2, rl.Clients())

	now = now.Add(clientIdleTTL + time.Second)
	rl.Allow("active")
	assert.Equal(t, 1, rl.Clients())
}

func TestRateLimiter_ConcurrentAccessSharesLimiter(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(10, 10)

	var wg sync.WaitGroup
	const goroutines = 50
	limiters := make(chan any, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiters <- rl.getLimiter("client")
		}()
	}
	wg.Wait()
	close(limiters)

	var first any
	for limiter := range limiters {
		if first == nil {
			first = limiter
		}
		assert.Same(t, first, limiter)
	}
}

func TestClientKey(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:53211"
	assert.Equal(t, "198.51.100.4", clientKey(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientKey(req))

	req.RemoteAddr = "pipe"
	assert.Equal(t, "pipe", clientKey(req))
}
