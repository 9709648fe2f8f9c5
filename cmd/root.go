package main

import (
	"fmt"

	"logdash/internal/config"
	"logdash/internal/logger"
	"logdash/internal/metrics"
	"logdash/internal/render"
	"logdash/internal/repository"
	"logdash/internal/service"
	"logdash/internal/timefmt"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "logdash",
	Short:        "Dashboard for a remote log service",
	Long:         "logdash polls a log service over HTTP and shows stats, filters and log cards in the browser or the terminal.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yml)")
}

// app holds everything both surfaces share.
type app struct {
	metrics  *metrics.Metrics
	services *service.Service
}

// buildApp wires repository, document and controller from cfg.
func buildApp(cfg config.Config, log *logger.Logger) (*app, error) {
	loc, err := timefmt.ParseLocation(cfg.Dashboard.Timezone)
	if err != nil {
		return nil, fmt.Errorf("dashboard.timezone: %w", err)
	}

	m := metrics.New()
	baseURL := cfg.APIBaseURL()
	repos := repository.NewRepository(repository.HTTPConfig{
		BaseURL: baseURL,
		Timeout: cfg.API.Timeout,
	}, m, log)

	doc := render.NewDocument(render.DocumentOptions{
		APIBaseURL: baseURL,
		PageSize:   cfg.Dashboard.PageSize,
		Formatter:  timefmt.New(cfg.Dashboard.TimeLayout, loc),
	})
	services := service.NewService(repos, doc, service.Options{
		PageSize:        cfg.Dashboard.PageSize,
		RefreshInterval: cfg.Dashboard.RefreshInterval,
		Metrics:         m,
		Logger:          log,
	})

	return &app{metrics: m, services: services}, nil
}
