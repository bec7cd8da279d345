// Package transport exposes the faucet over HTTP.
package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/faucet"
	"github.com/goodnatureofminers/ledger-faucet/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// FaucetService is the application surface served over HTTP.
	FaucetService interface {
		Transfer(ctx context.Context, recipient string) (faucet.TransferResult, error)
		Confirm(ctx context.Context, id model.DeployID) (model.Outcome, error)
		Balance(ctx context.Context, address string) (string, error)
	}
	// DispenseRecorder receives an audit record for every accepted transfer.
	DispenseRecorder interface {
		Record(d model.Dispense)
	}
	// HTTPMetrics records request metrics.
	HTTPMetrics interface {
		ObserveRequest(route string, code int, started time.Time)
		ObserveRateLimited(route string)
	}
)
