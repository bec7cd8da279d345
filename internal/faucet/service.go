package faucet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/ledger"
	"github.com/goodnatureofminers/ledger-faucet/internal/model"
	"github.com/goodnatureofminers/ledger-faucet/internal/node"
	"go.uber.org/zap"
)

// Config holds the faucet parameters fixed at startup.
type Config struct {
	Pool       model.NodePool
	Amount     uint64
	Credential *ledger.Credential
	Budget     model.PollingBudget
}

// Service runs the transfer flow: eligibility, node selection, submission.
type Service struct {
	gate        *Gate
	selector    NodeSelector
	coordinator *Coordinator
	reader      BalanceReader
	metrics     Metrics
	logger      *zap.Logger
	cfg         Config
}

// NewService wires a Service from its parts.
func NewService(
	gate *Gate,
	selector NodeSelector,
	coordinator *Coordinator,
	reader BalanceReader,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Service, error) {
	switch {
	case gate == nil:
		return nil, errors.New("gate is required")
	case selector == nil:
		return nil, errors.New("node selector is required")
	case coordinator == nil:
		return nil, errors.New("coordinator is required")
	case reader == nil:
		return nil, errors.New("balance reader is required")
	case metrics == nil:
		return nil, errors.New("faucet metrics is required")
	case cfg.Credential == nil:
		return nil, errors.New("signing credential is required")
	case cfg.Amount == 0:
		return nil, errors.New("faucet amount must be positive")
	case len(cfg.Pool) == 0:
		return nil, errors.New("node pool is empty")
	}
	if err := cfg.Budget.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gate:        gate,
		selector:    selector,
		coordinator: coordinator,
		reader:      reader,
		metrics:     metrics,
		logger:      logger,
		cfg:         cfg,
	}, nil
}

// Transfer sends the configured amount to recipient. The eligibility check
// strictly precedes node selection, which strictly precedes submission.
// The check and the transfer are not atomic: concurrent requests for the
// same recipient may all pass the gate.
func (s *Service) Transfer(ctx context.Context, recipient string) (result TransferResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveTransfer(transferResult(err), started)
	}()

	decision, err := s.gate.Check(ctx, recipient)
	if err != nil {
		return TransferResult{}, err
	}
	if !decision.Eligible {
		s.logger.Info("transfer refused",
			zap.String("recipient", recipient),
			zap.String("reason", decision.Reason),
		)
		return TransferResult{}, &IneligibleError{Reason: decision.Reason}
	}

	target, err := s.selector.Select(ctx, s.cfg.Pool)
	if err != nil {
		return TransferResult{}, err
	}

	id, err := s.coordinator.Submit(ctx, TransferRequest{
		Recipient:  recipient,
		Amount:     s.cfg.Amount,
		Credential: s.cfg.Credential,
	}, target)
	if err != nil {
		s.logger.Warn("transfer submission failed",
			zap.String("recipient", recipient),
			zap.Stringer("node", target),
			zap.Error(err),
		)
		return TransferResult{}, err
	}
	return TransferResult{DeployID: id, Node: target, Amount: s.cfg.Amount}, nil
}

// Confirm checks a prior submission using the configured polling budget.
func (s *Service) Confirm(ctx context.Context, id model.DeployID) (model.Outcome, error) {
	outcome, err := s.coordinator.Confirm(ctx, id, s.cfg.Budget)
	if err != nil {
		s.metrics.ObserveConfirm("", outcome.Attempts)
		return model.Outcome{}, err
	}
	s.metrics.ObserveConfirm(string(outcome.State), outcome.Attempts)
	return outcome, nil
}

// Balance returns the raw balance of address as reported by the read-only node.
func (s *Service) Balance(ctx context.Context, address string) (string, error) {
	balance, err := s.reader.ReadBalance(ctx, address)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return balance, nil
}

func transferResult(err error) string {
	switch {
	case err == nil:
		return "submitted"
	case errors.Is(err, ErrIneligible):
		return "ineligible"
	case errors.Is(err, ErrUnparsableBalance):
		return "unparsable_balance"
	case errors.Is(err, ErrReadFailed):
		return "balance_read_failed"
	case errors.Is(err, node.ErrEmptyPool), errors.Is(err, node.ErrNoReachableNode):
		return "no_node"
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, ErrTransportFailed):
		return "transport_failed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
