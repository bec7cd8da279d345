// Package faucet gates, submits and confirms faucet transfers.
package faucet

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/ledger"
	"github.com/goodnatureofminers/ledger-faucet/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Decision is the result of an eligibility check.
type Decision struct {
	Eligible bool
	Reason   string
}

// TransferRequest is one transfer to submit. Amount always comes from
// configuration, never from the caller.
type TransferRequest struct {
	Recipient  string
	Amount     uint64
	Credential *ledger.Credential
}

// TransferResult describes an accepted submission.
type TransferResult struct {
	DeployID model.DeployID
	Node     model.NodeEndpoint
	Amount   uint64
}

type (
	// BalanceReader reads an address balance as a base-10 string of base units.
	BalanceReader interface {
		ReadBalance(ctx context.Context, address string) (string, error)
	}
	// TransferSubmitter sends a signed transfer to one node.
	TransferSubmitter interface {
		SubmitTransfer(ctx context.Context, args ledger.TransferArgs, node model.NodeEndpoint) (model.DeployID, error)
	}
	// StatusPoller fetches the current status of a deploy.
	StatusPoller interface {
		PollStatus(ctx context.Context, id model.DeployID) (model.DeployInfo, error)
	}
	// NodeSelector picks a live node from the pool.
	NodeSelector interface {
		Select(ctx context.Context, pool model.NodePool) (model.NodeEndpoint, error)
	}
	// Metrics records transfer and confirmation outcomes.
	Metrics interface {
		ObserveTransfer(result string, started time.Time)
		ObserveConfirm(outcome string, attempts int)
	}
)
