package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yumyai/genesetexpander/logger"
	"github.com/yumyai/genesetexpander/pkg/handler"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the expander HTTP server",
	Long: `Serves POST /transform, GET /transformer_info, GET /api/v1/health and
GET /metrics. Gene-set files are read again on every request.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides EXPANDER_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveAddr != "" {
		settings.Addr = serveAddr
	}
	settings.Validate()

	expander, closeCatalog, err := newExpander(settings)
	if err != nil {
		return err
	}
	defer closeCatalog()

	srv := &http.Server{
		Addr:              settings.Addr,
		Handler:           NewRouter(&handler.ExpanderContext{Expander: expander}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Start:", zap.String("Version", VERSION), zap.Strings("gene_set_files", settings.GMTFiles))
		logger.Info("Server starting on", zap.String("addr", settings.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	return nil
}
