package node

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Prober tests whether a node is reachable. A nil error means the node is live.
	Prober interface {
		Probe(ctx context.Context, node model.NodeEndpoint) error
	}
	SelectorMetrics interface {
		ObserveProbe(node string, alive bool, started time.Time)
		ObserveSelect(err error, probes int)
	}
)
