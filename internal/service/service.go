package service

import (
	"context"
	"time"

	"logdash"
	"logdash/internal/logger"
	"logdash/internal/metrics"
	"logdash/internal/models"
	"logdash/internal/render"
	"logdash/internal/repository"
)

// Controller exposes the dashboard's user actions.
type Controller interface {
	LoadDashboard(ctx context.Context)
	AddTestLog(ctx context.Context) error
	ClearAllLogs(ctx context.Context, confirm ConfirmFunc) (bool, error)
	LoadMore(ctx context.Context) error
	SetFilters(c logdash.FilterCriteria)
	Filters() logdash.FilterCriteria
}

// Viewer exposes the rendered document.
type Viewer interface {
	Snapshot() models.View
	Version() uint64
	DrainAlerts() []string
}

// AutoRefresh is the periodic reload lifecycle.
// Stop via context cancellation or Stop() for graceful shutdown.
type AutoRefresh interface {
	Start(ctx context.Context)
	Stop()
	Running() bool
}

// Service aggregates the sub-services the surfaces depend on.
type Service struct {
	Controller
	Viewer
	AutoRefresh
}

// Options configures NewService.
type Options struct {
	PageSize        int
	RefreshInterval time.Duration
	Metrics         *metrics.Metrics
	Logger          *logger.Logger
}

// NewService wires the repository and document into the dashboard controller
// and its refresher.
func NewService(repos *repository.Repository, doc *render.Document, opts Options) *Service {
	dash := NewDashboardService(repos.Logs, doc, DashboardOptions{
		PageSize: opts.PageSize,
		Metrics:  opts.Metrics,
		Logger:   opts.Logger,
	})
	return &Service{
		Controller:  dash,
		Viewer:      doc,
		AutoRefresh: NewRefresher(dash.LoadDashboard, opts.RefreshInterval, opts.Logger),
	}
}
