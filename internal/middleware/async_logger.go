package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/mvr-resolver/internal/domain/model"
	"github.com/guttosm/mvr-resolver/internal/logger"
	"github.com/guttosm/mvr-resolver/internal/metrics"
	"github.com/guttosm/mvr-resolver/internal/service"
)

// AsyncLoggerConfig holds configuration for the async audit logger.
type AsyncLoggerConfig struct {
	// BufferSize is the size of the entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing batches.
	NumWorkers int
	// BatchSize is the maximum number of entries written in one call.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits before being written.
	FlushInterval time.Duration
	// WriteTimeout is the timeout for writing one batch.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async logger.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    2,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// AsyncLoggerStats is a snapshot of async logger counters.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Errors   int64
}

// AsyncLogger buffers audit entries and writes them in batches from a fixed
// worker pool, so request handling never waits on the database.
type AsyncLogger struct {
	audit   service.AuditService
	entryCh chan *model.AuditEntry
	wg      sync.WaitGroup
	cfg     AsyncLoggerConfig

	mu      sync.RWMutex
	stopped bool

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncLogger starts an async logger. It returns nil when audit is nil;
// a nil *AsyncLogger accepts and discards entries.
func NewAsyncLogger(audit service.AuditService, cfg AsyncLoggerConfig) *AsyncLogger {
	if audit == nil {
		return nil
	}

	defaults := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaults.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = defaults.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaults.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	al := &AsyncLogger{
		audit:   audit,
		entryCh: make(chan *model.AuditEntry, cfg.BufferSize),
		cfg:     cfg,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}

	return al
}

// worker accumulates entries and flushes when the batch is full, the flush
// interval elapses, or the channel is closed.
func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.AuditEntry, 0, al.cfg.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		al.write(batch)
		batch = make([]*model.AuditEntry, 0, al.cfg.BatchSize)
	}

	for {
		select {
		case entry, ok := <-al.entryCh:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= al.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (al *AsyncLogger) write(batch []*model.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.cfg.WriteTimeout)
	defer cancel()

	if err := al.audit.RecordMany(ctx, batch); err != nil {
		al.errors.Add(int64(len(batch)))
		metrics.RecordAuditEntries("failed", len(batch))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to write audit batch")
		return
	}
	al.written.Add(int64(len(batch)))
	metrics.RecordAuditEntries("written", len(batch))
}

// Log enqueues an entry. It returns false when the buffer is full or the
// logger has been stopped; the entry is dropped in both cases.
func (al *AsyncLogger) Log(entry *model.AuditEntry) bool {
	if al == nil || entry == nil {
		return false
	}

	al.mu.RLock()
	defer al.mu.RUnlock()

	if al.stopped {
		al.drop()
		return false
	}

	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		metrics.RecordAuditEntries("enqueued", 1)
		return true
	default:
		al.drop()
		return false
	}
}

func (al *AsyncLogger) drop() {
	al.dropped.Add(1)
	metrics.RecordAuditEntries("dropped", 1)
}

// Stop stops accepting entries, flushes what is buffered and waits for the
// workers to exit. It is safe to call more than once.
func (al *AsyncLogger) Stop() {
	if al == nil {
		return
	}

	al.mu.Lock()
	if al.stopped {
		al.mu.Unlock()
		return
	}
	al.stopped = true
	close(al.entryCh)
	al.mu.Unlock()

	al.wg.Wait()
}

// Stats returns current async logger counters.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	if al == nil {
		return AsyncLoggerStats{}
	}
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Errors:   al.errors.Load(),
	}
}
