// Package circuitbreaker provides a circuit breaker guarding calls to unreliable dependencies.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/mvr-resolver/internal/metrics"
	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the circuit breaker rejects a call.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed lets calls through and counts failures.
	StateClosed State = iota
	// StateOpen rejects calls until Timeout elapses.
	StateOpen
	// StateHalfOpen lets trial calls through to probe recovery.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures before opening the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive half-open successes needed to close it.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before allowing a trial call.
	Timeout time.Duration
	// Name labels logs and the state gauge.
	Name string
	// IsFailure decides whether an error counts toward tripping the circuit.
	// Errors it rejects are returned to the caller but treated as successes.
	// Nil counts every error.
	IsFailure func(error) bool
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config          Config
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	mu              sync.RWMutex
}

// New creates a circuit breaker in the closed state.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold < 1 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold < 1 {
		config.SuccessThreshold = 1
	}
	if config.Name == "" {
		config.Name = DefaultConfig().Name
	}
	metrics.SetCircuitBreakerState(config.Name, int(StateClosed))
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
	}
}

// Execute runs fn under circuit breaker protection.
// It returns ErrCircuitOpen without calling fn while the circuit is open, and
// the context error without calling fn when ctx is already done.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cb.allow(); err != nil {
		return err
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil && cb.countsAsFailure(err) {
		cb.onFailure()
		return err
	}
	cb.onSuccess()
	return err
}

// allow moves an expired open circuit to half-open and reports whether a call may proceed.
func (cb *CircuitBreaker) allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return nil
	}
	if time.Since(cb.lastFailureTime) < cb.config.Timeout {
		return ErrCircuitOpen
	}
	cb.successCount = 0
	cb.setState(StateHalfOpen)
	log.Info().
		Str("circuit_breaker", cb.config.Name).
		Msg("Circuit breaker transitioning to half-open")
	return nil
}

func (cb *CircuitBreaker) countsAsFailure(err error) bool {
	if cb.config.IsFailure == nil {
		return true
	}
	return cb.config.IsFailure(err)
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.setState(StateOpen)
			log.Warn().
				Str("circuit_breaker", cb.config.Name).
				Int("failure_count", cb.failureCount).
				Msg("Circuit breaker opened due to failures")
		}
	case StateHalfOpen:
		cb.failureCount = cb.config.FailureThreshold
		cb.setState(StateOpen)
		log.Warn().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker reopened after half-open failure")
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0

	if cb.state != StateHalfOpen {
		cb.successCount = 0
		return
	}
	cb.successCount++
	if cb.successCount >= cb.config.SuccessThreshold {
		cb.successCount = 0
		cb.setState(StateClosed)
		log.Info().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker closed after successful recovery")
	}
}

// setState records a transition. Caller must hold the lock.
func (cb *CircuitBreaker) setState(s State) {
	cb.state = s
	metrics.SetCircuitBreakerState(cb.config.Name, int(s))
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen reports whether the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats is a snapshot of circuit breaker counters.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"is_healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state != StateOpen,
	}
}
