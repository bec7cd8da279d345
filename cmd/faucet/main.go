package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/ledger-faucet/internal/address"
	"github.com/goodnatureofminers/ledger-faucet/internal/audit"
	"github.com/goodnatureofminers/ledger-faucet/internal/faucet"
	"github.com/goodnatureofminers/ledger-faucet/internal/health"
	"github.com/goodnatureofminers/ledger-faucet/internal/ledger"
	"github.com/goodnatureofminers/ledger-faucet/internal/metrics"
	"github.com/goodnatureofminers/ledger-faucet/internal/node"
	"github.com/goodnatureofminers/ledger-faucet/internal/repository/clickhouse"
	"github.com/goodnatureofminers/ledger-faucet/internal/transport"
	"github.com/goodnatureofminers/ledger-faucet/pkg/batcher"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpcHealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	transferLimiterIdleTTL = 10 * time.Minute
	httpShutdownTimeout    = 10 * time.Second
)

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is fine; the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("can't load .env: " + err.Error())
	}

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse flags: " + err.Error())
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("faucet failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	s, err := cfg.settings()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	faucetAddress, err := address.FromPublicKey(s.credential.PublicKey())
	if err != nil {
		return fmt.Errorf("derive faucet address: %w", err)
	}
	logger.Info("faucet configured",
		zap.String("address", faucetAddress),
		zap.Int("nodes", len(s.pool)),
		zap.Stringer("readonly", s.readonly),
		zap.Uint64("amount", cfg.Amount),
		zap.Uint64("max_balance", s.maxBalance),
		zap.Duration("deploy_max_wait", s.budget.MaxWait),
		zap.Duration("deploy_check_interval", s.budget.CheckInterval),
	)

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	httpClient := &http.Client{Timeout: cfg.RPCTimeout}
	ledgerClient, err := ledger.NewClient(httpClient, s.readonly, logger.Named("ledger"))
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}
	rpc := ledger.NewObservedClient(ledgerClient, metrics.NewRPCClient(cfg.Network))

	selector, err := node.NewSelector(rpc, metrics.NewNodeSelector(), logger.Named("selector"), cfg.ProbeTimeout)
	if err != nil {
		return err
	}
	gate, err := faucet.NewGate(rpc, s.maxBalance, logger.Named("gate"))
	if err != nil {
		return err
	}
	coordinator, err := faucet.NewCoordinator(rpc, rpc, logger.Named("coordinator"), cfg.RPCTimeout)
	if err != nil {
		return err
	}
	svc, err := faucet.NewService(gate, selector, coordinator, rpc, metrics.NewFaucet(), logger, faucet.Config{
		Pool:       s.pool,
		Amount:     cfg.Amount,
		Credential: s.credential,
		Budget:     s.budget,
	})
	if err != nil {
		return err
	}

	recorder, closeRecorder, err := newRecorder(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRecorder()

	handler, err := transport.NewHandler(svc, recorder, logger.Named("http"))
	if err != nil {
		return err
	}
	routerCfg := transport.DefaultRouterConfig()
	routerCfg.BodyLimit = cfg.BodyLimit
	routerCfg.RequestTimeout = cfg.RequestTimeout
	routerCfg.TrustProxy = cfg.TrustProxy
	if cfg.RateLimitRPS > 0 {
		routerCfg.TransferLimiter = transport.NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, transferLimiterIdleTTL)
	}

	healthServer := grpcHealth.NewServer()
	monitor, err := health.NewMonitor(selector, healthServer, s.pool, cfg.HealthInterval, logger.Named("health"))
	if err != nil {
		return err
	}
	if err := startGRPCServer(ctx, cfg.GRPCAddr, healthServer, logger); err != nil {
		return err
	}
	go monitor.Run(ctx)

	srv := &http.Server{
		Addr:              s.listenAddr,
		Handler:           transport.NewRouter(handler, metrics.NewHTTP(), logger.Named("access"), routerCfg),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", s.listenAddr, err)
	}
	logger.Info("starting HTTP server", zap.String("addr", s.listenAddr))
	return serveHTTP(ctx, srv, ln, logger)
}

// serveHTTP serves on ln until ctx is done and returns only after in-flight
// requests have finished or the shutdown timeout has passed.
func serveHTTP(ctx context.Context, srv *http.Server, ln net.Listener, logger *zap.Logger) error {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	<-shutdownDone
	return nil
}

// newRecorder returns the dispense recorder and its cleanup. Without a
// ClickHouse DSN dispenses are not persisted.
func newRecorder(ctx context.Context, cfg config, logger *zap.Logger) (transport.DispenseRecorder, func(), error) {
	if cfg.ClickhouseDSN == "" {
		logger.Info("ClickHouse DSN not set, dispense audit log disabled")
		return audit.Discard{}, func() {}, nil
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return nil, nil, fmt.Errorf("init repository: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := repo.Ping(pingCtx); err != nil {
		_ = repo.Close()
		return nil, nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	recorder, err := audit.NewRecorder(repo, logger.Named("audit"), batcher.Config{
		FlushSize:     cfg.AuditFlushSize,
		FlushInterval: cfg.AuditFlushInterval,
	}, cfg.AuditEnqueueWait)
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}
	recorder.Start(ctx)

	return recorder, func() {
		recorder.Stop()
		if err := repo.Close(); err != nil {
			logger.Error("failed to close clickhouse", zap.Error(err))
		}
	}, nil
}

func startGRPCServer(ctx context.Context, addr string, healthServer healthpb.HealthServer, logger *zap.Logger) error {
	grpcZap.ReplaceGrpcLoggerV2(logger.Named("grpc"))

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", addr, err)
	}
	go func() {
		logger.Info("starting gRPC health server", zap.String("addr", addr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
