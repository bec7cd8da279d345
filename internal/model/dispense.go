package model

import "time"

// BaseUnitsPerToken converts whole tokens into the ledger's smallest unit.
const BaseUnitsPerToken uint64 = 100_000_000

// Dispense is an audit record of one accepted faucet transfer.
type Dispense struct {
	RequestID string
	Recipient string
	Amount    uint64
	DeployID  DeployID
	NodeHost  string
	ClientIP  string
	CreatedAt time.Time
}
