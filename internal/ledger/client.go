package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledger-faucet/internal/model"
)

// Client implements NodeClient over HTTP. Balance reads and status polls go
// to a fixed read-only node; probes and submissions go to the node passed in.
type Client struct {
	rest     *resty.Client
	readonly model.NodeEndpoint
	now      func() time.Time
}

// NewClient builds a Client on top of httpClient, which is shared across
// requests and must be safe for concurrent use.
func NewClient(httpClient *http.Client, readonly model.NodeEndpoint, logger *zap.Logger) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("http client is required")
	}
	if readonly.Host == "" {
		return nil, errors.New("read-only node host is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	rest := resty.NewWithClient(httpClient).
		SetLogger(logger.Sugar()).
		SetResponseBodyLimit(maxResponseBytes).
		SetHeader("Accept", "application/json")
	return &Client{
		rest:     rest,
		readonly: readonly,
		now:      time.Now,
	}, nil
}

type transferData struct {
	To                    string `json:"to"`
	Amount                uint64 `json:"amount"`
	Timestamp             int64  `json:"timestamp"`
	PhloLimit             uint64 `json:"phlo_limit"`
	PhloPrice             uint64 `json:"phlo_price"`
	ValidAfterBlockNumber int64  `json:"valid_after_block_number"`
	Propose               bool   `json:"propose"`
}

type transferRequest struct {
	Data         json.RawMessage `json:"data"`
	Deployer     string          `json:"deployer"`
	Signature    string          `json:"signature"`
	SigAlgorithm string          `json:"sig_algorithm"`
}

type transferResponse struct {
	DeployID string `json:"deploy_id"`
}

type balanceResponse struct {
	Balance json.RawMessage `json:"balance"`
}

type deployResponse struct {
	Status    string `json:"status"`
	Msg       string `json:"msg"`
	BlockHash string `json:"block_hash"`
	Cost      uint64 `json:"cost"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Probe reports whether node answers its status endpoint with a 2xx.
func (c *Client) Probe(ctx context.Context, node model.NodeEndpoint) error {
	resp, err := c.rest.R().SetContext(ctx).Get(dataURL(node, "/status"))
	if err != nil {
		return transportError("probe", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("probe %s: unexpected status %d", node.DataAddr(), resp.StatusCode())
	}
	return nil
}

// ReadBalance returns the raw balance string for address in base units.
func (c *Client) ReadBalance(ctx context.Context, address string) (string, error) {
	var out balanceResponse
	if err := c.get(ctx, dataURL(c.readonly, "/api/balance/"+url.PathEscape(address)), &out); err != nil {
		return "", fmt.Errorf("read balance of %s: %w", address, err)
	}
	if len(out.Balance) == 0 {
		return "", fmt.Errorf("read balance of %s: %w: missing balance field", address, ErrTransport)
	}

	var s string
	if err := json.Unmarshal(out.Balance, &s); err == nil {
		return s, nil
	}
	return string(out.Balance), nil
}

// SubmitTransfer signs and submits a transfer to node's control endpoint.
func (c *Client) SubmitTransfer(ctx context.Context, args TransferArgs, node model.NodeEndpoint) (model.DeployID, error) {
	if args.Credential == nil {
		return "", errors.New("submit transfer: credential is required")
	}

	phloLimit := defaultPhloLimit
	if args.BiggerPhlo {
		phloLimit = biggerPhloLimit
	}
	data, err := json.Marshal(transferData{
		To:        args.Recipient,
		Amount:    args.Amount,
		Timestamp: c.now().UnixMilli(),
		PhloLimit: phloLimit,
		PhloPrice: defaultPhloPrice,
		Propose:   args.Propose,
	})
	if err != nil {
		return "", fmt.Errorf("encode transfer: %w", err)
	}
	body, err := json.Marshal(transferRequest{
		Data:         data,
		Deployer:     args.Credential.PublicKeyHex(),
		Signature:    args.Credential.Sign(data),
		SigAlgorithm: "secp256k1",
	})
	if err != nil {
		return "", fmt.Errorf("encode transfer request: %w", err)
	}

	var out transferResponse
	req := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if err := c.execute(req, http.MethodPost, controlURL(node, "/api/transfer"), &out); err != nil {
		return "", fmt.Errorf("submit transfer to %s: %w", node.ControlAddr(), err)
	}
	if out.DeployID == "" {
		return "", fmt.Errorf("submit transfer to %s: %w: empty deploy id", node.ControlAddr(), ErrTransport)
	}
	return model.DeployID(out.DeployID), nil
}

// PollStatus returns the current status of a deploy. A deploy the node does
// not know yet is reported as DeployStatusUnknown.
func (c *Client) PollStatus(ctx context.Context, id model.DeployID) (model.DeployInfo, error) {
	var out deployResponse
	err := c.get(ctx, dataURL(c.readonly, "/api/deploy/"+url.PathEscape(string(id))), &out)
	var rejected *RejectedError
	if errors.As(err, &rejected) && rejected.StatusCode == http.StatusNotFound {
		return model.DeployInfo{DeployID: id, Status: model.DeployStatusUnknown, Message: rejected.Message}, nil
	}
	if err != nil {
		return model.DeployInfo{}, fmt.Errorf("poll status of %s: %w", id, err)
	}

	status := model.DeployStatus(out.Status)
	if status == "" {
		status = model.DeployStatusUnknown
	}
	return model.DeployInfo{
		DeployID:  id,
		Status:    status,
		Message:   out.Msg,
		BlockHash: out.BlockHash,
		Cost:      out.Cost,
	}, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	return c.execute(c.rest.R().SetContext(ctx), http.MethodGet, rawURL, out)
}

// execute sends req and decodes a 2xx JSON body into out. Non-2xx answers
// become *RejectedError with the node's message; everything else is a
// transport error.
func (c *Client) execute(req *resty.Request, method, rawURL string, out any) error {
	var failure errorResponse
	resp, err := req.
		ForceContentType("application/json").
		SetResult(out).
		SetError(&failure).
		Execute(method, rawURL)
	if err != nil {
		if resp != nil && resp.IsSuccess() {
			return transportError("decode response", err)
		}
		return transportError(method+" "+rawURL, err)
	}
	if !resp.IsSuccess() {
		return &RejectedError{
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(resp.StatusCode(), failure, resp.Body()),
		}
	}
	return nil
}

func errorMessage(status int, failure errorResponse, body []byte) string {
	if failure.Error != "" {
		if failure.Details != "" {
			return failure.Error + ": " + failure.Details
		}
		return failure.Error
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return "status " + strconv.Itoa(status) + " " + http.StatusText(status)
}

func dataURL(node model.NodeEndpoint, path string) string {
	return "http://" + node.DataAddr() + path
}

func controlURL(node model.NodeEndpoint, path string) string {
	return "http://" + node.ControlAddr() + path
}
