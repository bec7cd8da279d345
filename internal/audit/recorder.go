// Package audit queues dispense records for asynchronous persistence.
package audit

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/model"
	"github.com/goodnatureofminers/ledger-faucet/pkg/batcher"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Store persists a batch of dispense records.
type Store interface {
	InsertDispenses(ctx context.Context, dispenses []model.Dispense) error
}

// Recorder buffers dispense records and writes them to a Store in batches.
// Record waits at most enqueueWait for a free queue slot and drops the
// record after that.
type Recorder struct {
	batcher     *batcher.Batcher[model.Dispense]
	logger      *zap.Logger
	enqueueWait time.Duration
}

// NewRecorder builds a Recorder. Call Start before Record and Stop on
// shutdown. A non-positive enqueueWait drops records as soon as the queue
// is full.
func NewRecorder(store Store, logger *zap.Logger, cfg batcher.Config, enqueueWait time.Duration) (*Recorder, error) {
	if store == nil {
		return nil, errors.New("dispense store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		batcher:     batcher.New[model.Dispense](logger.Named("batcher"), store.InsertDispenses, cfg),
		logger:      logger,
		enqueueWait: enqueueWait,
	}, nil
}

// Start launches the background writer.
func (r *Recorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

// Stop flushes pending records and stops the writer.
func (r *Recorder) Stop() {
	r.batcher.Stop()
}

// Record queues d for persistence.
func (r *Recorder) Record(d model.Dispense) {
	if err := r.enqueue(d); err != nil {
		r.logger.Warn("dispense record dropped",
			zap.String("request_id", d.RequestID),
			zap.String("deploy_id", string(d.DeployID)),
			zap.Error(err),
		)
	}
}

func (r *Recorder) enqueue(d model.Dispense) error {
	if r.enqueueWait <= 0 {
		return r.batcher.TryAdd(d)
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.enqueueWait)
	defer cancel()
	return r.batcher.Add(ctx, d)
}

// Discard is a recorder that keeps nothing. It is used when no audit
// store is configured.
type Discard struct{}

// Record does nothing.
func (Discard) Record(model.Dispense) {}
