package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/redundant-peer-sync/internal/metrics"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/model"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/node"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/recovery"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/refresh"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/remote"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/scheduler"
	"github.com/goodnatureofminers/redundant-peer-sync/internal/transport"
)

type config struct {
	Network           string        `long:"network" env:"PEERSYNC_NETWORK" description:"network name" default:"mainnet"`
	RPCURL            string        `long:"rpc-url" env:"PEERSYNC_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser           string        `long:"rpc-user" env:"PEERSYNC_RPC_USER" description:"node RPC username"`
	RPCPassword       string        `long:"rpc-password" env:"PEERSYNC_RPC_PASSWORD" description:"node RPC password"`
	RPCCookie         string        `long:"rpc-cookie" env:"PEERSYNC_RPC_COOKIE" description:"node RPC cookie file, discovered from the data dir when empty"`
	Sources           []string      `long:"source" env:"PEERSYNC_SOURCES" env-delim:"," description:"redundant source base URL (repeatable)" required:"true"`
	PageLimit         int           `long:"page-limit" env:"PEERSYNC_PAGE_LIMIT" description:"blocks per page requested from sources, 0 leaves it to the source"`
	PollInterval      time.Duration `long:"poll-interval" env:"PEERSYNC_POLL_INTERVAL" description:"interval between sync cycles" default:"60s"`
	HTTPTimeout       time.Duration `long:"http-timeout" env:"PEERSYNC_HTTP_TIMEOUT" description:"timeout for requests to sources" default:"30s"`
	RequestsPerSecond int           `long:"requests-per-second" env:"PEERSYNC_REQUESTS_PER_SECOND" description:"request rate limit per source" default:"2"`
	ZMQAddr           string        `long:"zmq-addr" env:"PEERSYNC_ZMQ_ADDR" description:"node zmq hashblock endpoint for early wakeups"`
	HTTPAddr          string        `long:"http-addr" env:"PEERSYNC_HTTP_ADDR" description:"status and metrics listen address" default:":8002"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("peer sync failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	rpc, err := node.Dial(node.ConnConfig{
		URL:        cfg.RPCURL,
		User:       cfg.RPCUser,
		Password:   cfg.RPCPassword,
		CookiePath: cfg.RPCCookie,
		Network:    cfg.Network,
	})
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()

	nodeClient := node.NewClient(
		rpcclient.NewObservedClient(rpc, metrics.NewRPCClient(cfg.Network)),
		logger,
	)

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger.Named("zmq"))
	if err != nil {
		return fmt.Errorf("init block signal: %w", err)
	}

	cycleMetrics := metrics.NewSyncCycle()
	sched, err := scheduler.New(scheduler.Config{
		Interval:    cfg.PollInterval,
		BlockSignal: blockSignal,
	}, cycleMetrics, logger)
	if err != nil {
		return err
	}

	remoteMetrics := metrics.NewRemoteSource()
	remoteCfg := remote.Config{
		PageLimit:         cfg.PageLimit,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}
	for _, addr := range cfg.Sources {
		source, err := model.NewRemoteSource(addr)
		if err != nil {
			return fmt.Errorf("source %q: %w", addr, err)
		}
		client := remote.NewClient(source, remoteCfg, remoteMetrics, logger.Named("remote"))
		resolver := recovery.NewResolver(nodeClient, client, logger.With(zap.String("source", source.Address)))
		refresher, err := refresh.NewRefresher(nodeClient, client, resolver, cycleMetrics, logger)
		if err != nil {
			return err
		}
		if err := sched.Add(refresher); err != nil {
			return fmt.Errorf("source %q: %w", addr, err)
		}
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           transport.NewHandler(transport.NewStatusHandler(sched, logger)),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve", zap.Error(err))
		}
	}()

	logger.Info("starting sync", zap.Int("sources", len(cfg.Sources)), zap.Duration("interval", cfg.PollInterval))
	return sched.Run(ctx)
}
