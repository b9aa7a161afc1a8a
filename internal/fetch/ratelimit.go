package fetch

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// hostLimiter throttles outbound requests per host. Government portals are
// shared infrastructure; a burst of concurrent topic fetches should not hit
// the same host all at once.
type hostLimiter struct {
	mu      sync.Mutex
	perHost map[string]*rate.Limiter
	rps     rate.Limit
	burst   int
}

func newHostLimiter(rps float64, burst int) *hostLimiter {
	if rps <= 0 {
		rps = 2
	}
	if burst <= 0 {
		burst = 2
	}
	return &hostLimiter{
		perHost: make(map[string]*rate.Limiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

// wait blocks until a request to rawURL's host is allowed, or ctx expires.
func (h *hostLimiter) wait(ctx context.Context, rawURL string) error {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}

	h.mu.Lock()
	limiter, ok := h.perHost[host]
	if !ok {
		limiter = rate.NewLimiter(h.rps, h.burst)
		h.perHost[host] = limiter
	}
	h.mu.Unlock()

	return limiter.Wait(ctx)
}
