package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/model"
)

// ObservedClient wraps a NodeClient with metrics instrumentation.
type ObservedClient struct {
	client     NodeClient
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented NodeClient.
func NewObservedClient(client NodeClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// Probe checks node liveness.
func (r *ObservedClient) Probe(ctx context.Context, node model.NodeEndpoint) (err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("probe", err, started)
	}()
	return r.client.Probe(ctx, node)
}

// ReadBalance reads an address balance.
func (r *ObservedClient) ReadBalance(ctx context.Context, address string) (balance string, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("read_balance", err, started)
	}()
	return r.client.ReadBalance(ctx, address)
}

// SubmitTransfer submits a signed transfer.
func (r *ObservedClient) SubmitTransfer(ctx context.Context, args TransferArgs, node model.NodeEndpoint) (id model.DeployID, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("submit_transfer", err, started)
	}()
	return r.client.SubmitTransfer(ctx, args, node)
}

// PollStatus fetches a deploy status.
func (r *ObservedClient) PollStatus(ctx context.Context, id model.DeployID) (info model.DeployInfo, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("poll_status", err, started)
	}()
	return r.client.PollStatus(ctx, id)
}
