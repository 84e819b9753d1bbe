//go:build !integration

package middleware

import (
	"sync"
	"testing"
	"time"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// recordedBatches collects what RecordMany received.
type recordedBatches struct {
	mu      sync.Mutex
	batches [][]*model.AuditEntry
}

func (r *recordedBatches) add(args mock.Arguments) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, args.Get(1).([]*model.AuditEntry))
}

func (r *recordedBatches) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, b := range r.batches {
		n += len(b)
	}
	return n
}

func (r *recordedBatches) sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.batches))
	for i, b := range r.batches {
		out[i] = len(b)
	}
	return out
}

func TestNewAsyncLogger_NilService(t *testing.T) {
	al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())

	assert.Nil(t, al)
	assert.False(t, al.Log(&model.AuditEntry{}))
	assert.NotPanics(t, al.Stop)
	assert.Equal(t, AsyncLoggerStats{}, al.Stats())
}

func TestAsyncLogger_BatchesBySize(t *testing.T) {
	audit := new(mocks.MockAuditService)
	rec := &recordedBatches{}
	audit.On("RecordMany", mock.Anything, mock.Anything).Run(rec.add).Return(nil)

	al := NewAsyncLogger(audit, AsyncLoggerConfig{
		BufferSize:    100,
		NumWorkers:    1,
		BatchSize:     5,
		FlushInterval: time.Hour,
		WriteTimeout:  time.Second,
	})

	for i := 0; i < 12; i++ {
		assert.True(t, al.Log(&model.AuditEntry{Action: model.ActionResolvePackage}))
	}
	al.Stop()

	assert.Equal(t, []int{5, 5, 2}, rec.sizes())
	stats := al.Stats()
	assert.Equal(t, int64(12), stats.Enqueued)
	assert.Equal(t, int64(12), stats.Written)
	assert.Zero(t, stats.Dropped)
}

func TestAsyncLogger_FlushesOnInterval(t *testing.T) {
	audit := new(mocks.MockAuditService)
	rec := &recordedBatches{}
	audit.On("RecordMany", mock.Anything, mock.Anything).Run(rec.add).Return(nil)

	al := NewAsyncLogger(audit, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     100,
		FlushInterval: 10 * time.Millisecond,
	})
	defer al.Stop()

	al.Log(&model.AuditEntry{})
	al.Log(&model.AuditEntry{})

	assert.Eventually(t, func() bool { return rec.total() == 2 }, time.Second, 5*time.Millisecond)
}

func TestAsyncLogger_CountsWriteErrors(t *testing.T) {
	audit := new(mocks.MockAuditService)
	audit.On("RecordMany", mock.Anything, mock.Anything).Return(assert.AnError)

	al := NewAsyncLogger(audit, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 2, FlushInterval: time.Hour})

	al.Log(&model.AuditEntry{})
	al.Log(&model.AuditEntry{})
	al.Log(&model.AuditEntry{})
	al.Stop()

	stats := al.Stats()
	assert.Equal(t, int64(3), stats.Errors)
	assert.Zero(t, stats.Written)
}

func TestAsyncLogger_DropsWhenFull(t *testing.T) {
	audit := new(mocks.MockAuditService)
	release := make(chan struct{})
	audit.On("RecordMany", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(nil)

	al := NewAsyncLogger(audit, AsyncLoggerConfig{BufferSize: 1, NumWorkers: 1, BatchSize: 1, FlushInterval: time.Hour})

	// The first entry occupies the worker, the second fills the buffer.
	assert.True(t, al.Log(&model.AuditEntry{}))
	assert.Eventually(t, func() bool { return len(al.entryCh) == 0 }, time.Second, time.Millisecond)
	assert.True(t, al.Log(&model.AuditEntry{}))
	assert.False(t, al.Log(&model.AuditEntry{}))

	close(release)
	al.Stop()

	stats := al.Stats()
	assert.Equal(t, int64(1), stats.Dropped)
	assert.Equal(t, int64(2), stats.Written)
}

func TestAsyncLogger_LogAfterStop(t *testing.T) {
	audit := new(mocks.MockAuditService)
	al := NewAsyncLogger(audit, DefaultAsyncLoggerConfig())

	al.Stop()
	al.Stop()

	assert.False(t, al.Log(&model.AuditEntry{}))
	assert.Equal(t, int64(1), al.Stats().Dropped)
	audit.AssertNotCalled(t, "RecordMany", mock.Anything, mock.Anything)
}

func TestNewAsyncLogger_AppliesDefaults(t *testing.T) {
	al := NewAsyncLogger(new(mocks.MockAuditService), AsyncLoggerConfig{})
	defer al.Stop()

	assert.Equal(t, DefaultAsyncLoggerConfig(), al.cfg)
}
