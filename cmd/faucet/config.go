package main

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/ledger"
	"github.com/goodnatureofminers/ledger-faucet/internal/model"
	"github.com/goodnatureofminers/ledger-faucet/pkg/safe"
)

type config struct {
	Amount     uint64 `long:"amount" env:"FAUCET_AMOUNT" description:"amount sent per transfer, in base units" default:"10000"`
	MaxBalance uint64 `long:"max-balance" env:"FAUCET_MAX_BALANCE" description:"recipients holding at least this many whole tokens are refused" default:"20000"`
	PrivateKey string `long:"private-key" env:"PRIVATE_KEY" description:"hex secp256k1 key that signs transfers"`
	Network    string `long:"network" env:"FAUCET_NETWORK" description:"network label for metrics" default:"testnet"`

	NodeHosts     string `long:"node-hosts" env:"NODE_HOSTS" description:"comma separated node hosts, optionally in brackets" default:"localhost"`
	NodeGRPCPorts string `long:"node-grpc-ports" env:"NODE_GRPC_PORTS" description:"control ports matching node-hosts" default:"40401"`
	NodeHTTPPorts string `long:"node-http-ports" env:"NODE_HTTP_PORTS" description:"data ports matching node-hosts" default:"40403"`

	ReadonlyHost     string `long:"readonly-host" env:"READONLY_HOST" description:"read-only node host for balances and deploy status" default:"localhost"`
	ReadonlyGRPCPort uint16 `long:"readonly-grpc-port" env:"READONLY_GRPC_PORT" description:"read-only node control port" default:"40452"`
	ReadonlyHTTPPort uint16 `long:"readonly-http-port" env:"READONLY_HTTP_PORT" description:"read-only node data port" default:"40453"`

	ServerHost string `long:"server-host" env:"SERVER_HOST" description:"HTTP API host" default:"0.0.0.0"`
	ServerPort uint16 `long:"server-port" env:"SERVER_PORT" description:"HTTP API port" default:"8000"`

	DeployMaxWaitSec       uint32 `long:"deploy-max-wait-sec" env:"DEPLOY_MAX_WAIT_SEC" description:"confirmation polling budget in seconds" default:"6"`
	DeployCheckIntervalSec uint32 `long:"deploy-check-interval-sec" env:"DEPLOY_CHECK_INTERVAL_SEC" description:"seconds between status polls" default:"2"`

	ProbeTimeout   time.Duration `long:"probe-timeout" env:"FAUCET_PROBE_TIMEOUT" description:"liveness probe timeout per node" default:"2s"`
	RPCTimeout     time.Duration `long:"rpc-timeout" env:"FAUCET_RPC_TIMEOUT" description:"timeout for one node call" default:"5s"`
	RequestTimeout time.Duration `long:"request-timeout" env:"FAUCET_REQUEST_TIMEOUT" description:"HTTP request timeout" default:"7s"`
	BodyLimit      int64         `long:"body-limit" env:"FAUCET_BODY_LIMIT" description:"maximum request body in bytes" default:"1048576"`
	RateLimitRPS   float64       `long:"rate-limit-rps" env:"FAUCET_RATE_LIMIT_RPS" description:"transfer requests per second per client IP, 0 disables" default:"0.2"`
	RateLimitBurst int           `long:"rate-limit-burst" env:"FAUCET_RATE_LIMIT_BURST" description:"transfer burst per client IP" default:"3"`
	TrustProxy     bool          `long:"trust-proxy" env:"FAUCET_TRUST_PROXY" description:"take the client IP from X-Forwarded-For"`

	MetricsAddr    string        `long:"metrics-addr" env:"FAUCET_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	GRPCAddr       string        `long:"grpc-addr" env:"FAUCET_GRPC_ADDR" description:"address for the gRPC health server" default:":8001"`
	HealthInterval time.Duration `long:"health-interval" env:"FAUCET_HEALTH_INTERVAL" description:"node pool health check interval" default:"15s"`

	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"FAUCET_CLICKHOUSE_DSN" description:"ClickHouse DSN for the dispense audit log, empty disables it"`
	AuditFlushSize     int           `long:"audit-flush-size" env:"FAUCET_AUDIT_FLUSH_SIZE" description:"dispense records per insert" default:"100"`
	AuditFlushInterval time.Duration `long:"audit-flush-interval" env:"FAUCET_AUDIT_FLUSH_INTERVAL" description:"maximum delay before a partial batch is written" default:"5s"`
	AuditEnqueueWait   time.Duration `long:"audit-enqueue-wait" env:"FAUCET_AUDIT_ENQUEUE_WAIT" description:"how long a request waits for a free audit queue slot before the record is dropped" default:"50ms"`

	LogJSON bool `long:"log-json" env:"FAUCET_LOG_JSON" description:"use the production JSON logger"`
}

// settings is config after validation and conversion.
type settings struct {
	pool       model.NodePool
	readonly   model.NodeEndpoint
	credential *ledger.Credential
	maxBalance uint64
	budget     model.PollingBudget
	listenAddr string
}

func (c config) settings() (settings, error) {
	if strings.TrimSpace(c.PrivateKey) == "" {
		return settings{}, errors.New("PRIVATE_KEY is required")
	}
	credential, err := ledger.ParseCredential(c.PrivateKey)
	if err != nil {
		return settings{}, fmt.Errorf("PRIVATE_KEY: %w", err)
	}
	if c.Amount == 0 {
		return settings{}, errors.New("FAUCET_AMOUNT must be greater than 0")
	}
	if c.DeployCheckIntervalSec == 0 {
		return settings{}, errors.New("DEPLOY_CHECK_INTERVAL_SEC must be greater than 0")
	}
	maxBalance, err := safe.MulUint64(c.MaxBalance, model.BaseUnitsPerToken)
	if err != nil {
		return settings{}, fmt.Errorf("FAUCET_MAX_BALANCE: %w", err)
	}
	if c.ReadonlyHost == "" {
		return settings{}, errors.New("READONLY_HOST is required")
	}

	hosts := splitList(c.NodeHosts)
	controlPorts, err := parsePorts(c.NodeGRPCPorts)
	if err != nil {
		return settings{}, fmt.Errorf("NODE_GRPC_PORTS: %w", err)
	}
	dataPorts, err := parsePorts(c.NodeHTTPPorts)
	if err != nil {
		return settings{}, fmt.Errorf("NODE_HTTP_PORTS: %w", err)
	}
	pool, err := model.NewNodePool(hosts, controlPorts, dataPorts)
	if err != nil {
		return settings{}, err
	}

	return settings{
		pool: pool,
		readonly: model.NodeEndpoint{
			Host:        c.ReadonlyHost,
			ControlPort: c.ReadonlyGRPCPort,
			DataPort:    c.ReadonlyHTTPPort,
		},
		credential: credential,
		maxBalance: maxBalance,
		budget: model.PollingBudget{
			MaxWait:       time.Duration(c.DeployMaxWaitSec) * time.Second,
			CheckInterval: time.Duration(c.DeployCheckIntervalSec) * time.Second,
		},
		listenAddr: net.JoinHostPort(c.ServerHost, strconv.Itoa(int(c.ServerPort))),
	}, nil
}

// splitList accepts "a,b", "[a, b]" and `["a","b"]`.
func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.Trim(strings.TrimSpace(p), `"'`))
	}
	return out
}

func parsePorts(raw string) ([]uint16, error) {
	items := splitList(raw)
	ports := make([]uint16, 0, len(items))
	for _, item := range items {
		v, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("port %q is not a number", item)
		}
		port, err := safe.Uint16(v)
		if err != nil {
			return nil, fmt.Errorf("port %q: %w", item, err)
		}
		ports = append(ports, port)
	}
	return ports, nil
}
