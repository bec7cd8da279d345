package model

import (
	"strings"
	"time"
)

// DeployID is the opaque identifier returned by a node for an accepted submission.
type DeployID string

// DeployStatus is the processing state reported by a node for a deploy.
type DeployStatus string

var (
	DeployStatusDeploying         DeployStatus = "Deploying"
	DeployStatusFinalizing        DeployStatus = "Finalizing"
	DeployStatusFinalized         DeployStatus = "Finalized"
	DeployStatusFinalizationError DeployStatus = "FinalizationError"
	DeployStatusDeployError       DeployStatus = "DeployError"
	DeployStatusUnknown           DeployStatus = "Unknown"
)

// Succeeded reports whether the status is the terminal success state.
func (s DeployStatus) Succeeded() bool {
	return s == DeployStatusFinalized
}

// Failed reports whether the status is a terminal failure.
func (s DeployStatus) Failed() bool {
	return strings.HasSuffix(string(s), "Error") || strings.HasSuffix(strings.ToUpper(string(s)), "_ERROR")
}

// Terminal reports whether no further status change is expected.
func (s DeployStatus) Terminal() bool {
	return s.Succeeded() || s.Failed()
}

// DeployInfo is the status snapshot of a deploy as reported by a node.
type DeployInfo struct {
	DeployID  DeployID     `json:"deploy_id"`
	Status    DeployStatus `json:"status"`
	Message   string       `json:"msg,omitempty"`
	BlockHash string       `json:"block_hash,omitempty"`
	Cost      uint64       `json:"cost,omitempty"`
}

// OutcomeState is the result class of a confirmation.
type OutcomeState string

var (
	OutcomeConfirmed OutcomeState = "confirmed"
	OutcomePending   OutcomeState = "pending"
	OutcomeFailed    OutcomeState = "failed"
)

// Outcome is the result of confirming a deploy within a polling budget.
// A pending outcome means the budget ran out without a terminal answer; the
// deploy may still complete on the node later.
type Outcome struct {
	State    OutcomeState
	Info     *DeployInfo
	Reason   string
	Attempts int
	LastErr  error
}

// PollingBudget bounds confirmation polling.
type PollingBudget struct {
	MaxWait       time.Duration
	CheckInterval time.Duration
}

// MaxAttempts returns floor(MaxWait / CheckInterval).
func (b PollingBudget) MaxAttempts() int {
	if b.CheckInterval <= 0 || b.MaxWait <= 0 {
		return 0
	}
	return int(b.MaxWait / b.CheckInterval)
}

// Validate checks the budget invariants.
func (b PollingBudget) Validate() error {
	if b.CheckInterval <= 0 {
		return errInvalidCheckInterval
	}
	if b.MaxWait < 0 {
		return errNegativeMaxWait
	}
	return nil
}
