package faucet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/clock"
	"github.com/goodnatureofminers/ledger-faucet/internal/ledger"
	"github.com/goodnatureofminers/ledger-faucet/internal/model"
	"go.uber.org/zap"
)

const (
	defaultCallTimeout = 5 * time.Second
	// defaultResponseReserve is kept free before the caller's deadline so a
	// pending outcome can still be reported.
	defaultResponseReserve = 250 * time.Millisecond
)

// Coordinator submits transfers and confirms them by bounded polling.
type Coordinator struct {
	submitter   TransferSubmitter
	poller      StatusPoller
	logger      *zap.Logger
	callTimeout time.Duration
	reserve     time.Duration
	sleep       clock.SleepFunc
	now         func() time.Time
}

// NewCoordinator builds a Coordinator. callTimeout bounds each backend call;
// a non-positive value falls back to five seconds.
func NewCoordinator(submitter TransferSubmitter, poller StatusPoller, logger *zap.Logger, callTimeout time.Duration) (*Coordinator, error) {
	if submitter == nil {
		return nil, errors.New("transfer submitter is required")
	}
	if poller == nil {
		return nil, errors.New("status poller is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &Coordinator{
		submitter:   submitter,
		poller:      poller,
		logger:      logger,
		callTimeout: callTimeout,
		reserve:     defaultResponseReserve,
		sleep:       clock.Sleep,
		now:         time.Now,
	}, nil
}

// Submit sends req to node exactly once. It never retries: calling it again
// may create a duplicate submission.
func (c *Coordinator) Submit(ctx context.Context, req TransferRequest, node model.NodeEndpoint) (model.DeployID, error) {
	if req.Amount == 0 {
		return "", errors.New("transfer amount must be positive")
	}
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	id, err := c.submitter.SubmitTransfer(callCtx, ledger.TransferArgs{
		Recipient:  req.Recipient,
		Amount:     req.Amount,
		Credential: req.Credential,
		BiggerPhlo: true,
		Propose:    false,
	}, node)
	if err != nil {
		return "", err
	}

	c.logger.Info("transfer submitted",
		zap.String("deploy_id", string(id)),
		zap.String("recipient", req.Recipient),
		zap.Uint64("amount", req.Amount),
		zap.Stringer("node", node),
	)
	return id, nil
}

// Confirm polls the status of id until it reaches a terminal state or the
// budget's attempts run out. At least one poll is always made. A transport
// failure uses up an attempt; the last one is attached to a pending outcome.
// When ctx carries a deadline, polls are shortened and later attempts are
// skipped so that the pending outcome is returned before the deadline.
func (c *Coordinator) Confirm(ctx context.Context, id model.DeployID, budget model.PollingBudget) (model.Outcome, error) {
	if err := budget.Validate(); err != nil {
		return model.Outcome{}, err
	}
	attempts := max(1, budget.MaxAttempts())

	var (
		made     int
		lastErr  error
		lastInfo *model.DeployInfo
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return model.Outcome{}, err
		}

		timeout, ok := c.pollTimeout(ctx)
		if !ok {
			if attempt > 1 {
				break
			}
			timeout = c.callTimeout
		}

		info, err := c.poll(ctx, id, timeout)
		made = attempt
		switch {
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return model.Outcome{}, ctxErr
			}
			lastErr = err
			c.logger.Debug("status poll failed",
				zap.String("deploy_id", string(id)),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		case info.Status.Succeeded():
			return model.Outcome{State: model.OutcomeConfirmed, Info: &info, Attempts: attempt}, nil
		case info.Status.Failed():
			reason := info.Message
			if reason == "" {
				reason = string(info.Status)
			}
			return model.Outcome{State: model.OutcomeFailed, Info: &info, Reason: reason, Attempts: attempt}, nil
		default:
			lastInfo = &info
		}

		if attempt == attempts {
			break
		}
		if !c.fits(ctx, budget.CheckInterval) {
			c.logger.Debug("confirmation stopped at caller deadline",
				zap.String("deploy_id", string(id)),
				zap.Int("attempts", attempt),
			)
			break
		}
		if err := c.sleep(ctx, budget.CheckInterval); err != nil {
			return model.Outcome{}, err
		}
	}

	reason := fmt.Sprintf("no terminal status after %d attempts", made)
	if lastErr != nil {
		reason = fmt.Sprintf("%s: %v", reason, lastErr)
	}
	return model.Outcome{
		State:    model.OutcomePending,
		Info:     lastInfo,
		Reason:   reason,
		Attempts: made,
		LastErr:  lastErr,
	}, nil
}

// pollTimeout bounds one poll by the call timeout and by what is left of
// ctx's deadline after the response reserve. ok is false when nothing is left.
func (c *Coordinator) pollTimeout(ctx context.Context) (time.Duration, bool) {
	deadline, has := ctx.Deadline()
	if !has {
		return c.callTimeout, true
	}
	left := deadline.Sub(c.now()) - c.reserve
	if left <= 0 {
		return 0, false
	}
	return min(c.callTimeout, left), true
}

// fits reports whether a pause of d still leaves time for another poll
// before ctx's deadline.
func (c *Coordinator) fits(ctx context.Context, d time.Duration) bool {
	deadline, has := ctx.Deadline()
	if !has {
		return true
	}
	return deadline.Sub(c.now())-c.reserve-d > 0
}

func (c *Coordinator) poll(ctx context.Context, id model.DeployID, timeout time.Duration) (model.DeployInfo, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.poller.PollStatus(callCtx, id)
}
