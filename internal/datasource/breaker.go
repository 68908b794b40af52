// Package datasource provides clients for the external data sources the
// pipeline consults: the College Scorecard API, the BLS wage statistics API,
// and the education-domain search API. Every client degrades to a local seed
// fallback; callers never see an upstream failure.
package datasource

import (
	"time"

	"github.com/sony/gobreaker"
)

// newBreaker builds the circuit breaker used around each upstream client.
// When an upstream keeps failing, the open circuit short-cuts calls straight
// to the seed fallback instead of waiting out the request timeout each time.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 3 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
	})
}
