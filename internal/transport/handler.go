package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/address"
	"github.com/goodnatureofminers/ledger-faucet/internal/model"
	"go.uber.org/zap"
)

type transferRequest struct {
	ToAddress string `json:"to_address"`
}

type transferResponse struct {
	DeployID string `json:"deploy_id"`
}

type balanceResponse struct {
	Balance string `json:"balance"`
}

type deployResponse struct {
	DeployID  string `json:"deploy_id"`
	Outcome   string `json:"outcome"`
	Status    string `json:"status,omitempty"`
	Msg       string `json:"msg,omitempty"`
	BlockHash string `json:"block_hash,omitempty"`
	Cost      uint64 `json:"cost,omitempty"`
	Attempts  int    `json:"attempts"`
	Reason    string `json:"reason,omitempty"`
}

// Handler serves the faucet API.
type Handler struct {
	svc      FaucetService
	recorder DispenseRecorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewHandler builds a Handler.
func NewHandler(svc FaucetService, recorder DispenseRecorder, logger *zap.Logger) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("faucet service is required")
	}
	if recorder == nil {
		return nil, errors.New("dispense recorder is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		svc:      svc,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Transfer handles POST /transfer.
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var maxBytes *http.MaxBytesError
		if !errors.As(err, &maxBytes) {
			err = fmt.Errorf("%w: malformed JSON body: %w", errBadRequest, err)
		}
		h.fail(w, r, err)
		return
	}
	if err := address.Validate(req.ToAddress); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.Transfer(r.Context(), req.ToAddress)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.recorder.Record(model.Dispense{
		RequestID: RequestIDFromContext(r.Context()),
		Recipient: req.ToAddress,
		Amount:    res.Amount,
		DeployID:  res.DeployID,
		NodeHost:  res.Node.Host,
		ClientIP:  ClientIPFromContext(r.Context()),
		CreatedAt: h.now().UTC(),
	})
	writeJSON(w, http.StatusOK, transferResponse{DeployID: string(res.DeployID)})
}

// Deploy handles GET /deploy/{deploy_id}.
func (h *Handler) Deploy(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("deploy_id")
	if err := address.ValidateDeployID(id); err != nil {
		h.fail(w, r, err)
		return
	}

	outcome, err := h.svc.Confirm(r.Context(), model.DeployID(id))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := deployResponse{
		DeployID: id,
		Outcome:  string(outcome.State),
		Attempts: outcome.Attempts,
		Reason:   outcome.Reason,
	}
	if outcome.Info != nil {
		resp.Status = string(outcome.Info.Status)
		resp.Msg = outcome.Info.Message
		resp.BlockHash = outcome.Info.BlockHash
		resp.Cost = outcome.Info.Cost
	}
	writeJSON(w, http.StatusOK, resp)
}

// Balance handles GET /balance/{address}.
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	addr := r.PathValue("address")
	if err := address.Validate(addr); err != nil {
		h.fail(w, r, err)
		return
	}

	balance, err := h.svc.Balance(r.Context(), addr)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Balance: balance})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, title := classify(err)
	fields := []zap.Field{
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Info("request refused", fields...)
	}
	writeError(w, status, title, errorDetails(err), h.now())
}
