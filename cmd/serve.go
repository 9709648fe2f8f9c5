package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logdash/internal/config"
	"logdash/internal/handlers"
	"logdash/internal/logger"
	"logdash/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const (
	defaultPort     = "8080"
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web dashboard",
	Long: `Serve the web dashboard and its JSON API.

The dashboard reloads logs and stats on start and every
dashboard.refresh_interval until the process receives SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// load config.yml
	cfg, err := config.Load(cfgFile)
	if err != nil {
		logger.Get(logger.InfoLevel).Errorw("error reading config", "err", err)
		return err
	}

	// init logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	defer func() { _ = log.Sync() }()
	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := buildApp(cfg, log)
	if err != nil {
		log.Errorw("error wiring dashboard", "err", err)
		return err
	}
	apiHandler := handlers.NewHandler(a.services, a.metrics, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// start auto refresh
	a.services.Start(ctx)
	log.Infow("dashboard_started", "api", cfg.APIBaseURL(), "port", cfg.Port, "refresh_interval", cfg.Dashboard.RefreshInterval)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, a.services.Stop, srv, log)
	return nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = defaultPort
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, stopRefresh func(), srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()
	stopRefresh()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
