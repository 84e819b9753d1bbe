package resolver

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds how an operation is retried.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first. Zero disables retrying.
	MaxRetries int
	// InitialInterval is the first exponential backoff interval.
	InitialInterval time.Duration
	// MaxInterval caps every wait. A rate-limit asking for longer stops retrying.
	MaxInterval time.Duration
}

// DefaultRetryPolicy returns the policy used by the HTTP API.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
	}
}

// Retry calls fn until it succeeds, returns a non-retryable error, or the
// policy is exhausted. Between attempts it waits the delay suggested by the
// error, falling back to exponential backoff.
func Retry[T any](ctx context.Context, policy RetryPolicy, fn func(context.Context) (T, error)) (T, error) {
	if policy.MaxRetries <= 0 {
		return fn(ctx)
	}

	exp := backoff.NewExponentialBackOff()
	if policy.InitialInterval > 0 {
		exp.InitialInterval = policy.InitialInterval
	}
	if policy.MaxInterval > 0 {
		exp.MaxInterval = policy.MaxInterval
	}
	exp.MaxElapsedTime = 0

	b := &errorBackOff{
		next:        backoff.WithMaxRetries(exp, uint64(policy.MaxRetries)),
		maxInterval: policy.MaxInterval,
	}

	op := func() (T, error) {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if !IsRetryable(err) {
			return v, backoff.Permanent(err)
		}
		if d, ok := RetryDelay(err); ok && IsRateLimited(err) && policy.MaxInterval > 0 && d > policy.MaxInterval {
			return v, backoff.Permanent(err)
		}
		b.lastErr = err
		return v, err
	}

	return backoff.RetryWithData(op, backoff.WithContext(b, ctx))
}

// errorBackOff prefers the delay carried by the last error over the wrapped policy.
type errorBackOff struct {
	next        backoff.BackOff
	maxInterval time.Duration
	lastErr     error
}

func (b *errorBackOff) NextBackOff() time.Duration {
	d := b.next.NextBackOff()
	if d == backoff.Stop {
		return d
	}
	if suggested, ok := RetryDelay(b.lastErr); ok {
		d = suggested
	}
	if b.maxInterval > 0 && d > b.maxInterval {
		d = b.maxInterval
	}
	return d
}

func (b *errorBackOff) Reset() {
	b.lastErr = nil
	b.next.Reset()
}
