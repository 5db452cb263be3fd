// Package breaker wraps sony/gobreaker for the outbound provider clients.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/config"
)

// ErrOpen is returned while the breaker rejects calls.
var ErrOpen = errors.New("service unavailable: circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateHalfOpen State = "half-open"
	StateOpen     State = "open"
)

type CircuitBreaker struct {
	name   string
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

// New builds a breaker. ignore, when set, marks errors that are the caller's
// fault (validation, not found) so they do not count towards tripping.
func New(name string, cfg config.CircuitBreakerConfig, logger *zap.Logger, ignore func(error) bool) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if cfg.ConsecutiveFails > 0 && counts.ConsecutiveFailures >= cfg.ConsecutiveFails {
				return true
			}
			if counts.Requests < cfg.ConsecutiveFails {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return ignore != nil && ignore(err)
		},
	}

	return &CircuitBreaker{
		name:   name,
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// Execute runs fn through the breaker.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	_, err := cb.cb.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			return nil, fn()
		}
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			cb.logger.Warn("Circuit breaker rejected request", zap.String("name", cb.name), zap.Error(err))
			return fmt.Errorf("%s: %w", cb.name, ErrOpen)
		}
		return err
	}

	return nil
}

func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// GetState returns the current state of the circuit breaker.
func (cb *CircuitBreaker) GetState() State {
	switch cb.cb.State() {
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	case gobreaker.StateOpen:
		return StateOpen
	default:
		return StateClosed
	}
}

// GetCounts returns the current counts of the circuit breaker.
func (cb *CircuitBreaker) GetCounts() (requests, failures uint32) {
	counts := cb.cb.Counts()
	return counts.Requests, counts.TotalFailures
}
