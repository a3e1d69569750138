package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jkorab/camel"
	"github.com/jkorab/camel/inspect"
	"github.com/jkorab/camel/internal/config"
	"github.com/jkorab/camel/runtime"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a context and serve its admin API",
	Long: `Builds a context from the configuration file — mounting the declared
connectors and resolving the declared endpoints — then serves the inspect
HTTP API until interrupted.

Example config (camelctl.yaml):

  context_name: orders
  admin_addr: :8080
  properties:
    broker.host: kafka.internal
  connectors:
    - descriptor: connectors/orders-timer.json
  endpoints:
    - orders-timer:checkout?period=5000
`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "admin API address (overrides admin_addr from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.AdminAddr = addr
	}

	logger := slog.Default()

	container := camel.New(
		camel.WithName(cfg.ContextName),
		camel.WithProperties(runtime.MapProperties(cfg.Properties)),
		camel.WithLogger(logger),
	)

	for _, cc := range cfg.Connectors {
		descriptor, err := os.ReadFile(cc.Descriptor)
		if err != nil {
			return err
		}
		if _, err := container.AddConnector(descriptor); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := container.Start(ctx); err != nil {
		return err
	}

	for _, uri := range cfg.Endpoints {
		if _, err := container.Context().GetEndpoint(uri); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: inspect.Handler(container.Registry()),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("admin api listening", "addr", cfg.AdminAddr, "context", cfg.ContextName)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if stopErr := container.Stop(stopCtx); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}
