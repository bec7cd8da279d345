// Package ledger talks to ledger nodes over their HTTP JSON interface.
package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	defaultPhloLimit uint64 = 500_000
	biggerPhloLimit  uint64 = 5_000_000
	defaultPhloPrice uint64 = 1

	maxResponseBytes = 1 << 20
)

// TransferArgs describes one signed transfer submission.
type TransferArgs struct {
	Recipient  string
	Amount     uint64
	Credential *Credential
	// BiggerPhlo requests an enlarged execution allowance.
	BiggerPhlo bool
	// Propose asks the node to propose a block right away.
	Propose bool
}

type (
	// NodeClient is the RPC surface the faucet needs from the ledger.
	NodeClient interface {
		Probe(ctx context.Context, node model.NodeEndpoint) error
		ReadBalance(ctx context.Context, address string) (string, error)
		SubmitTransfer(ctx context.Context, args TransferArgs, node model.NodeEndpoint) (model.DeployID, error)
		PollStatus(ctx context.Context, id model.DeployID) (model.DeployInfo, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
