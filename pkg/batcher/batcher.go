// Package batcher buffers items in memory and hands them to a flush callback
// in batches, pacing flushes with a rate limiter.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	// ErrStopped is returned when adding to a batcher that has been stopped.
	ErrStopped = errors.New("batcher stopped")
	// ErrFull is returned by TryAdd when the queue has no free slot.
	ErrFull = errors.New("batcher queue is full")
)

// Config controls batching.
type Config struct {
	// FlushSize is the batch size that triggers an immediate flush.
	FlushSize int
	// FlushInterval flushes a partial batch after this long.
	FlushInterval time.Duration
	// RPS caps flushes per second.
	RPS int
	// QueueSize is the number of items that may wait for the loop.
	// Defaults to twice FlushSize.
	QueueSize int
	// ShutdownTimeout bounds the final flush after the loop is asked to stop.
	ShutdownTimeout time.Duration
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback   func(context.Context, []T) error
	itemsCh         chan T
	flushSize       int
	flushInterval   time.Duration
	shutdownTimeout time.Duration
	rl              ratelimit.Limiter
	logger          *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Non-positive config values fall back to
// one-item batches, a one second interval and 100 flushes per second.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, cfg Config) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 100
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = cfg.FlushSize * 2
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batcher[T]{
		logger:          logger,
		flushCallback:   flushCallback,
		itemsCh:         make(chan T, cfg.QueueSize),
		flushSize:       cfg.FlushSize,
		flushInterval:   cfg.FlushInterval,
		shutdownTimeout: cfg.ShutdownTimeout,
		rl:              ratelimit.New(cfg.RPS),
		stop:            make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop ends the loop after a final flush and waits for it. Safe to call twice.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

// TryAdd queues an item without blocking.
func (b *Batcher[T]) TryAdd(item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case b.itemsCh <- item:
		return nil
	default:
		return ErrFull
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		err := b.flushCallback(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// drain takes whatever is still queued and flushes it with a fresh
	// deadline, since ctx may already be done.
	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					b.finalFlush(ctx, flush)
				}
			default:
				b.finalFlush(ctx, flush)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}

func (b *Batcher[T]) finalFlush(ctx context.Context, flush func(context.Context)) {
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.shutdownTimeout)
	defer cancel()
	flush(flushCtx)
}
