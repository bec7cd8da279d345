package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected marks an explicit refusal returned by a node.
	ErrRejected = errors.New("node rejected request")
	// ErrTransport marks a failure to reach a node or read its answer.
	ErrTransport = errors.New("node transport failure")
)

// RejectedError carries a node's refusal message verbatim.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// Is matches ErrRejected.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}
