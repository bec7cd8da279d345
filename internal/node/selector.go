// Package node picks a live ledger node from the configured pool.
package node

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/model"
	"go.uber.org/zap"
)

const defaultProbeTimeout = 2 * time.Second

var (
	// ErrEmptyPool is returned when no nodes are configured.
	ErrEmptyPool = errors.New("node pool is empty")
	// ErrNoReachableNode is returned when every node failed its liveness probe.
	ErrNoReachableNode = errors.New("no reachable node")
)

// Selector returns a random live node, probing candidates one at a time.
type Selector struct {
	prober       Prober
	metrics      SelectorMetrics
	logger       *zap.Logger
	probeTimeout time.Duration
	perm         func(n int) []int
}

// NewSelector builds a Selector. A non-positive probeTimeout falls back to two seconds.
func NewSelector(prober Prober, metrics SelectorMetrics, logger *zap.Logger, probeTimeout time.Duration) (*Selector, error) {
	if prober == nil {
		return nil, errors.New("node prober is required")
	}
	if metrics == nil {
		return nil, errors.New("node selector metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if probeTimeout <= 0 {
		probeTimeout = defaultProbeTimeout
	}
	return &Selector{
		prober:       prober,
		metrics:      metrics,
		logger:       logger,
		probeTimeout: probeTimeout,
		perm:         rand.Perm,
	}, nil
}

// Select probes the pool in a fresh random order and returns the first node
// that answers. Probes run sequentially, so the worst case is
// len(pool) * probeTimeout. The pool itself is never modified.
func (s *Selector) Select(ctx context.Context, pool model.NodePool) (selected model.NodeEndpoint, err error) {
	probes := 0
	defer func() {
		s.metrics.ObserveSelect(err, probes)
	}()

	if len(pool) == 0 {
		return model.NodeEndpoint{}, ErrEmptyPool
	}

	var lastErr error
	for _, idx := range s.perm(len(pool)) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.NodeEndpoint{}, ctxErr
		}

		candidate := pool[idx]
		probes++
		probeErr := s.probe(ctx, candidate)
		if probeErr == nil {
			s.logger.Debug("node selected",
				zap.Stringer("node", candidate),
				zap.Int("probes", probes))
			return candidate, nil
		}

		lastErr = probeErr
		s.logger.Debug("node probe failed",
			zap.Stringer("node", candidate),
			zap.Error(probeErr))
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return model.NodeEndpoint{}, ctxErr
	}
	return model.NodeEndpoint{}, fmt.Errorf("%w after %d probes: %w", ErrNoReachableNode, probes, lastErr)
}

func (s *Selector) probe(ctx context.Context, node model.NodeEndpoint) error {
	ctx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	started := time.Now()
	err := s.prober.Probe(ctx, node)
	s.metrics.ObserveProbe(node.DataAddr(), err == nil, started)
	return err
}
