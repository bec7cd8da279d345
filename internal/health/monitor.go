// Package health keeps the gRPC health status in line with node pool liveness.
package health

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/model"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ServiceName is the health service name reported for the faucet.
const ServiceName = "ledger.faucet"

type (
	// NodeSelector picks a live node from the pool.
	NodeSelector interface {
		Select(ctx context.Context, pool model.NodePool) (model.NodeEndpoint, error)
	}
	// StatusSetter receives serving status updates.
	StatusSetter interface {
		SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
	}
)

// Monitor probes the pool on an interval and reports SERVING while at
// least one node answers.
type Monitor struct {
	selector NodeSelector
	status   StatusSetter
	pool     model.NodePool
	interval time.Duration
	logger   *zap.Logger

	last healthpb.HealthCheckResponse_ServingStatus
}

// NewMonitor builds a Monitor.
func NewMonitor(selector NodeSelector, status StatusSetter, pool model.NodePool, interval time.Duration, logger *zap.Logger) (*Monitor, error) {
	if selector == nil {
		return nil, errors.New("node selector is required")
	}
	if status == nil {
		return nil, errors.New("status setter is required")
	}
	if interval <= 0 {
		return nil, errors.New("health check interval must be positive")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		selector: selector,
		status:   status,
		pool:     pool,
		interval: interval,
		logger:   logger,
		last:     healthpb.HealthCheckResponse_UNKNOWN,
	}, nil
}

// Run checks once immediately and then on every tick until ctx is done.
// On exit the status is set to NOT_SERVING.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	defer m.set(healthpb.HealthCheckResponse_NOT_SERVING)

	m.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check runs one pool probe and updates the status.
func (m *Monitor) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	checkCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	selected, err := m.selector.Select(checkCtx, m.pool)
	if err != nil {
		if ctx.Err() != nil {
			return m.last
		}
		if m.last != healthpb.HealthCheckResponse_NOT_SERVING {
			m.logger.Warn("node pool unhealthy", zap.Error(err))
		}
		m.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return m.last
	}

	if m.last != healthpb.HealthCheckResponse_SERVING {
		m.logger.Info("node pool healthy", zap.Stringer("node", selected))
	}
	m.set(healthpb.HealthCheckResponse_SERVING)
	return m.last
}

func (m *Monitor) set(status healthpb.HealthCheckResponse_ServingStatus) {
	m.last = status
	m.status.SetServingStatus(ServiceName, status)
	m.status.SetServingStatus("", status)
}
