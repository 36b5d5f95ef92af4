package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"item-catalog/pkg/log"
)

const (
	maxTrackedClients = 1000
	clientTTL         = 5 * time.Minute
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates the middleware set. requestsPerMin bounds each client on the
// rate-limited routes; tracked clients expire so the table stays small.
func New(l log.Logger, requestsPerMin int) Middleware {
	if requestsPerMin <= 0 {
		requestsPerMin = 120
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}
