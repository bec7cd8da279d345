package faucet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/ledger-faucet/pkg/safe"
	"go.uber.org/zap"
)

// Gate decides whether a recipient may receive funds based on a balance
// ceiling fixed at construction.
type Gate struct {
	reader     BalanceReader
	maxBalance uint64
	logger     *zap.Logger
}

// NewGate builds a Gate. maxBalance is in base units.
func NewGate(reader BalanceReader, maxBalance uint64, logger *zap.Logger) (*Gate, error) {
	if reader == nil {
		return nil, errors.New("balance reader is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		reader:     reader,
		maxBalance: maxBalance,
		logger:     logger,
	}, nil
}

// Check reads the recipient balance once and compares it with the ceiling.
// A balance equal to the ceiling is already ineligible.
func (g *Gate) Check(ctx context.Context, recipient string) (Decision, error) {
	raw, err := g.reader.ReadBalance(ctx, recipient)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	balance, err := safe.ParseUint64(raw)
	if errors.Is(err, safe.ErrOutOfRange) {
		return Decision{
			Eligible: false,
			Reason:   fmt.Sprintf("balance %s is at or above the maximum allowed %d", strings.TrimSpace(raw), g.maxBalance),
		}, nil
	}
	if err != nil {
		g.logger.Error("node returned unparsable balance",
			zap.String("recipient", recipient),
			zap.String("balance", raw),
			zap.Error(err),
		)
		return Decision{}, fmt.Errorf("%w: %w", ErrUnparsableBalance, err)
	}

	if balance >= g.maxBalance {
		return Decision{
			Eligible: false,
			Reason:   fmt.Sprintf("balance %d is at or above the maximum allowed %d", balance, g.maxBalance),
		}, nil
	}
	return Decision{Eligible: true}, nil
}
