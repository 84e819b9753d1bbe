package resolver

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/guttosm/mvr-resolver/internal/metrics"
	"golang.org/x/sync/semaphore"
)

// Admission bounds the number of registry fetches in flight.
type Admission struct {
	sem      *semaphore.Weighted
	max      int
	inFlight atomic.Int64
}

// NewAdmission returns a controller admitting at most maxConcurrent holders.
func NewAdmission(maxConcurrent int) *Admission {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Admission{
		sem: semaphore.NewWeighted(int64(maxConcurrent)),
		max: maxConcurrent,
	}
}

// Acquire blocks until a permit is available. If ctx ends first it returns a
// TooManyConcurrentRequests error and holds nothing.
func (a *Admission) Acquire(ctx context.Context) error {
	start := time.Now()
	if err := a.sem.Acquire(ctx, 1); err != nil {
		return &Error{Kind: KindTooManyConcurrentRequests, MaxConcurrent: a.max, Err: err}
	}
	metrics.ObserveAdmissionWait(time.Since(start))
	metrics.AdmissionInFlight.Set(float64(a.inFlight.Add(1)))
	return nil
}

// Release returns a permit taken by a successful Acquire.
func (a *Admission) Release() {
	metrics.AdmissionInFlight.Set(float64(a.inFlight.Add(-1)))
	a.sem.Release(1)
}

// InFlight returns the number of permits currently held.
func (a *Admission) InFlight() int {
	return int(a.inFlight.Load())
}

// Max returns the permit count.
func (a *Admission) Max() int {
	return a.max
}
