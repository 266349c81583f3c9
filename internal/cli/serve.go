package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"grocery-app/internal/api"
	"grocery-app/internal/config"
	"grocery-app/internal/logging"
	"grocery-app/internal/realtime"
	"grocery-app/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(flags *serveFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}
}

func (f *serveFlags) apply(cfg *config.Config) {
	if f.port != "" {
		cfg.Port = f.port
	}
	if f.recipesFile != "" {
		cfg.Seed.RecipesFile = f.recipesFile
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
}

func newStore(cfg *config.Config) (*store.MemStore, error) {
	if cfg.Seed.RecipesFile == "" {
		return store.NewMemStore(), nil
	}
	recipes, err := store.LoadSeedFile(cfg.Seed.RecipesFile)
	if err != nil {
		return nil, err
	}
	return store.NewMemStore(store.WithSeedRecipes(recipes)), nil
}

func runServe(cmd *cobra.Command, flags *serveFlags) error {
	cfg := config.Load()
	flags.apply(cfg)

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})
	slog.SetDefault(logger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	s, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}
	logger.Info("store ready", "recipes", len(s.Recipes()))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var hub *realtime.Hub
	if cfg.WebSocket.Enabled {
		hub = realtime.NewHub(logger, cfg.CORS.AllowedOrigins)
		go hub.Run(ctx)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.SetupRouter(s, hub, cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "websocket", cfg.WebSocket.Enabled)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
