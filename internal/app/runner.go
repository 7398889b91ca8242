// internal/app/runner.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/pump-sdk/internal/blockchain/solbc"
	"github.com/rovshanmuradov/pump-sdk/internal/config"
	"github.com/rovshanmuradov/pump-sdk/internal/onchain"
	"github.com/rovshanmuradov/pump-sdk/internal/utils/logger"
	"github.com/rovshanmuradov/pump-sdk/internal/utils/metrics"
)

// Runner собирает зависимости из конфигурации и выполняет команды.
type Runner struct {
	logger   *logger.Logger
	config   *config.Config
	registry *prometheus.Registry
	metrics  *metrics.Collector
	provider *onchain.Provider
	server   *http.Server
	out      io.Writer
}

// NewRunner создаёт RPC клиент, провайдер и метрики по конфигурации.
func NewRunner(cfg *config.Config, logger *logger.Logger, out io.Writer) (*Runner, error) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	client, err := solbc.NewClient(cfg.RPCList, solbc.Options{
		Retries:    cfg.Retries,
		RetryDelay: cfg.RetryDelay(),
		Commitment: cfg.CommitmentType(),
		Metrics:    collector,
	}, logger.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client: %w", err)
	}

	return &Runner{
		logger:   logger.Named("runner"),
		config:   cfg,
		registry: registry,
		metrics:  collector,
		provider: onchain.NewProvider(client, onchain.Options{
			CacheTTL: cfg.CacheTTL(),
			Metrics:  collector,
		}, logger),
		out: out,
	}, nil
}

// Run выполняет команду; SIGINT/SIGTERM отменяет контекст.
func (r *Runner) Run(ctx context.Context, cmd Command) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.startMetricsServer()
	defer r.Shutdown()

	opLog, done := r.logger.TrackPerformance(cmd.Name)
	err := Execute(ctx, r.provider, cmd, r.out, opLog)
	r.metrics.RecordQuote(cmd.Name, err == nil)
	if err != nil {
		return err
	}
	done()
	return nil
}

// startMetricsServer поднимает /metrics, если задан metrics_addr.
func (r *Runner) startMetricsServer() {
	if r.config.MetricsAddr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	r.server = &http.Server{
		Addr:              r.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		r.logger.Info("Serving metrics", zap.String("addr", r.config.MetricsAddr))
		if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.logger.Error("Metrics server failed", zap.Error(err))
		}
	}()
}

// Shutdown останавливает сервер метрик.
func (r *Runner) Shutdown() {
	if r.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.server.Shutdown(ctx); err != nil {
		r.logger.Warn("Failed to stop metrics server", zap.Error(err))
	}
	r.server = nil
}
