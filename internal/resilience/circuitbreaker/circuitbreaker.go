// Package circuitbreaker wraps sony/gobreaker with the trip policy shared by
// all outbound dependencies: a failure ratio over a minimum request count.
package circuitbreaker

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// ErrOpen is returned by Do while the breaker rejects calls.
var ErrOpen = gobreaker.ErrOpenState

// ErrTooManyRequests is returned in half-open state once MaxRequests probes are in flight.
var ErrTooManyRequests = gobreaker.ErrTooManyRequests

// Config describes when a breaker trips and how it recovers.
type Config struct {
	Name string
	// MaxRequests is the number of probe calls allowed while half-open.
	MaxRequests uint32
	// Interval is the cyclic period after which closed-state counts are cleared.
	Interval time.Duration
	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration
	// FailureThreshold is the failure ratio (0..1) that trips the breaker.
	FailureThreshold float64
	// MinRequests must be reached before the ratio is evaluated.
	MinRequests uint32
}

func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// FeedFetchConfig is the template for the breaker of a single feed. It opens
// once every attempt of a retried fetch has failed, so a dead feed is skipped
// for Timeout instead of being retried on each cycle.
func FeedFetchConfig() Config {
	return Config{
		Name:             "feed-fetch",
		MaxRequests:      1,
		Interval:         10 * time.Minute,
		Timeout:          5 * time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      3,
	}
}

// SummarizerConfig trips after a few consecutive failed batches so cycles stop
// waiting on the full request timeout of an endpoint that is down.
func SummarizerConfig() Config {
	return Config{
		Name:             "summarizer",
		MaxRequests:      1,
		Interval:         5 * time.Minute,
		Timeout:          2 * time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      3,
	}
}

// CircuitBreaker is safe for concurrent use.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New builds a breaker. State changes are logged at warn level on the default logger.
func New(cfg Config) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Do runs fn through the breaker and keeps the result typed.
func Do[T any](cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := cb.breaker.Execute(func() (interface{}, error) {
		return fn()
	})
	v, _ := res.(T)
	return v, err
}

func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

func (cb *CircuitBreaker) Name() string {
	return cb.name
}

func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}

// IsRejection reports whether err came from the breaker itself rather than from the wrapped call.
func IsRejection(err error) bool {
	return errors.Is(err, ErrOpen) || errors.Is(err, ErrTooManyRequests)
}
