package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/server"
	"go-chi-calculator/internal/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr     string
		imageDir string
	)

	cmd := &cobra.Command{
		Use:           "calculator",
		Short:         "Serve the calculator pages over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("image-dir") {
				cfg.ImageDir = imageDir
			}

			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	cmd.Flags().StringVar(&imageDir, "image-dir", "", "directory served under the image prefix (overrides IMAGE_DIR)")

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	// Logger
	if err := observability.InitLogger(cfg.DevLogging); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer observability.SyncLogger()

	observability.SetServiceName(cfg.ServiceName)

	logShutdown, err := initLogging(ctx, cfg.LogsEnabled)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logShutdown(context.Background())

	// Tracing
	traceShutdown, err := observability.InitTracing(ctx)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer traceShutdown(context.Background())

	// Metrics
	metricShutdown, err := initMetrics(ctx)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer metricShutdown(context.Background())

	// Pages
	machine := calculator.NewMachine(calculator.NewState(),
		calculator.WithMaxResultBits(cfg.MaxResultBits),
	)
	pages := web.NewHost(machine,
		web.WithImagePrefix(cfg.ImagePrefix),
		web.WithImageDir(cfg.ImageDir),
	)
	if err := pages.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.NewRouter(pages),
	}

	serveErr := make(chan error, 1)
	go func() {
		observability.Logger.Info("server started", zap.String("addr", cfg.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	return waitForShutdown(srv, cfg, serveErr)
}

func waitForShutdown(srv *http.Server, cfg config.Config, serveErr <-chan error) error {

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	observability.Logger.Info("server stopping")
	return srv.Shutdown(ctx)
}
