package faucet

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/ledger-faucet/internal/ledger"
)

var (
	// ErrIneligible is returned when the recipient already holds too much.
	ErrIneligible = errors.New("recipient is not eligible")
	// ErrUnparsableBalance is a local fault: the node returned a balance that
	// is not a base-10 unsigned integer.
	ErrUnparsableBalance = errors.New("unparsable balance")
	// ErrReadFailed wraps a failure to read the recipient balance.
	ErrReadFailed = errors.New("balance read failed")
	// ErrRejected aliases ledger.ErrRejected so callers need not import ledger.
	ErrRejected = ledger.ErrRejected
	// ErrTransportFailed aliases ledger.ErrTransport.
	ErrTransportFailed = ledger.ErrTransport
)

// IneligibleError carries the reason a recipient was refused.
type IneligibleError struct {
	Reason string
}

func (e *IneligibleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIneligible, e.Reason)
}

// Is matches ErrIneligible.
func (e *IneligibleError) Is(target error) bool {
	return target == ErrIneligible
}
