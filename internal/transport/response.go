package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/address"
	"github.com/goodnatureofminers/ledger-faucet/internal/faucet"
	"github.com/goodnatureofminers/ledger-faucet/internal/node"
)

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, title, details string, now time.Time) {
	writeJSON(w, status, errorResponse{
		Error:     title,
		Details:   details,
		Timestamp: now.UTC().Format(time.RFC3339),
	})
}

// classify maps an error to its HTTP status and public title. Details are
// the error text itself, so node messages reach the caller unchanged.
func classify(err error) (int, string) {
	var maxBytes *http.MaxBytesError
	var ineligible *faucet.IneligibleError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, "Payload Too Large"
	case errors.Is(err, errBadRequest),
		errors.Is(err, address.ErrInvalidAddress),
		errors.Is(err, address.ErrInvalidDeployID),
		errors.As(err, &ineligible):
		return http.StatusBadRequest, "Validation Error"
	case errors.Is(err, faucet.ErrUnparsableBalance):
		return http.StatusInternalServerError, "Internal Server Error"
	case errors.Is(err, node.ErrEmptyPool), errors.Is(err, node.ErrNoReachableNode):
		return http.StatusServiceUnavailable, "Service Unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Gateway Timeout"
	case errors.Is(err, faucet.ErrReadFailed):
		return http.StatusBadGateway, "Bad Gateway"
	case errors.Is(err, faucet.ErrRejected):
		return http.StatusBadRequest, "Transfer Failed"
	case errors.Is(err, faucet.ErrTransportFailed):
		return http.StatusBadGateway, "Bad Gateway"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func errorDetails(err error) string {
	var ineligible *faucet.IneligibleError
	if errors.As(err, &ineligible) {
		return ineligible.Reason
	}
	return err.Error()
}
