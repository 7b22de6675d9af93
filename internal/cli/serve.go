package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/qrstyle/internal/config"
	"github.com/cristianadrielbraun/qrstyle/internal/handlers"
	"github.com/cristianadrielbraun/qrstyle/internal/logostore"
	"github.com/cristianadrielbraun/qrstyle/internal/qrmatrix"
	"github.com/cristianadrielbraun/qrstyle/internal/theme"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	h := handlers.New(handlers.Options{
		Themes:       theme.Builtin(),
		Source:       qrmatrix.New(cfg.Encoder),
		Logos:        logostore.New(cfg.UploadDir, cfg.MaxLogoBytes),
		Logger:       logger,
		DefaultTheme: cfg.DefaultTheme,
	})
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handlers.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("qrstyle listening", "addr", cfg.Addr(), "encoder", cfg.Encoder, "uploads", cfg.UploadDir)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
