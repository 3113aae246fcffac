package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/KasumiMercury/primind-push-fanout/internal/config"
	"github.com/KasumiMercury/primind-push-fanout/internal/credential"
	"github.com/KasumiMercury/primind-push-fanout/internal/handler"
	"github.com/KasumiMercury/primind-push-fanout/internal/health"
	"github.com/KasumiMercury/primind-push-fanout/internal/infra/fanoutrecorder"
	"github.com/KasumiMercury/primind-push-fanout/internal/infra/profilestore"
	"github.com/KasumiMercury/primind-push-fanout/internal/infra/pushsender"
	"github.com/KasumiMercury/primind-push-fanout/internal/infra/repository"
	"github.com/KasumiMercury/primind-push-fanout/internal/observability/metrics"
	"github.com/KasumiMercury/primind-push-fanout/internal/service/fanout"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg.LogLevel)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		slog.Error("task queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	fanoutMetrics, err := metrics.NewFanoutMetrics()
	if err != nil {
		slog.Error("failed to initialize fanout metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local, BigQuery for gcloud
	resultRecorder, err := fanoutrecorder.NewRecorder(ctx, fanoutrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize fanout result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close fanout result recorder", slog.String("error", err.Error()))
		}
	}()

	taskQueue, cleanup, err := initTaskQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize task queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("task queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient, err := initRedis(ctx, cfg.Redis)
	if err != nil {
		return 1
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()
	}

	store, closeStore, err := profilestore.New(cfg.DataStore)
	if err != nil {
		slog.Error("failed to initialize provider store", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			slog.Warn("failed to close provider store", slog.String("error", err.Error()))
		}
	}()

	account, err := credential.ParseServiceAccount([]byte(cfg.Firebase.ServiceAccountJSON))
	if err != nil {
		slog.Error("failed to parse service account", slog.String("error", err.Error()))
		return 1
	}

	brokerOpts := []credential.BrokerOption{
		credential.WithMetrics(fanoutMetrics),
		credential.WithFetchTimeout(cfg.Fanout.SendTimeout),
	}
	if redisClient != nil {
		brokerOpts = append(brokerOpts, credential.WithCache(repository.NewCredentialCache(redisClient), account.ClientEmail))
	}
	broker := credential.NewBroker(
		credential.Strategy(cfg.Fanout.CredentialStrategy),
		credential.NewServiceAccountExchanger(account),
		brokerOpts...,
	)

	sender, err := pushsender.NewFCMSender(ctx, account.ProjectID, cfg.Firebase.FCMEndpoint, nil)
	if err != nil {
		slog.Error("failed to initialize push sender", slog.String("error", err.Error()))
		return 1
	}

	fanoutService := fanout.NewService(
		fanout.NewResolver(store, cfg.Fanout.StoreTimeout),
		fanout.NewDispatcher(sender, cfg.Fanout.SendTimeout, cfg.Fanout.DispatchConcurrency),
		broker,
		fanout.Presentation{
			Icon:  cfg.Firebase.Icon,
			Badge: cfg.Firebase.Badge,
			Link:  cfg.Firebase.ClickLink,
		},
		taskQueue,
		resultRecorder,
		fanoutMetrics,
	)

	r := newRouter(routerDeps{
		cors:          cfg.CORS,
		httpMetrics:   httpMetrics,
		fanoutHandler: handler.NewFanoutHandler(fanoutService),
		healthChecker: health.NewChecker(redisClient, store, Version),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("data_store", string(cfg.DataStore.Backend)),
			slog.String("credential_strategy", string(broker.Strategy())),
			slog.Int("dispatch_concurrency", cfg.Fanout.DispatchConcurrency),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		if err := resultRecorder.Flush(shutdownCtx); err != nil {
			slog.Warn("failed to flush fanout results", slog.String("error", err.Error()))
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

// initRedis connects the credential cache. It returns a nil client when redis is not configured.
func initRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		slog.Info("redis not configured, shared credential cache disabled")
		return nil, nil
	}

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		_ = redisClient.Close()
		return nil, err
	}

	slog.Info("redis connected", slog.String("addr", cfg.Addr))

	return redisClient, nil
}
