package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codegen/internal/ai"
	"codegen/internal/api"
	"codegen/internal/pipeline"
	"codegen/internal/structure"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generation pipeline over HTTP",
	Long: `Starts an HTTP server with:
  GET  /health
  POST /project/generate   {"prompt": "...", "mode": "requirements|code|full"}

Set APP_ENV=production for gin release mode.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from SERVER_ADDRESS)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.ServerAddress
	if serveAddr != "" {
		addr = serveAddr
	}

	// Cancelled on shutdown so in-flight generations stop.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, err := ai.NewGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}
	p := pipeline.New(g, pipeline.Options{
		OutputDir: cfg.ProjectOutputDir,
		Provider:  cfg.ModelProvider,
		Model:     cfg.Model(),
		ApplyOptions: []structure.Option{
			structure.WithRunner(structure.NewShellRunner(cfg.ShellPath)),
			structure.WithCommandTimeout(cfg.CommandTimeout),
		},
		Logger: logger,
	})

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Info("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	api.RegisterRoutes(router, api.NewAPIHandler(p, logger))

	server := &http.Server{
		Addr:    addr,
		Handler: router,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadTimeout: 15 * time.Second,
		// Generation spans several model calls.
		WriteTimeout: 30 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting API server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		logger.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	cancel()
	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("API server forced shutdown", zap.Error(err))
		return err
	}
	logger.Info("API server gracefully stopped")
	return nil
}
