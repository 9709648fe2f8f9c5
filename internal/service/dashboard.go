package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"logdash"
	"logdash/internal/logger"
	"logdash/internal/metrics"
	"logdash/internal/render"
	"logdash/internal/repository"

	"golang.org/x/sync/errgroup"
)

// Busy labels and user-facing messages.
const (
	labelAdding   = "Adding..."
	labelClearing = "Clearing..."
	labelLoading  = "Loading..."
	labelRetry    = "Retry"

	ClearPrompt = "Delete all logs? This cannot be undone."

	alertAddFailed   = "API error: unable to add the log"
	alertClearFailed = "API error: unable to clear the logs"
)

// ConfirmFunc asks the user to approve a destructive action.
type ConfirmFunc func(prompt string) bool

// DashboardService owns the in-memory log list and the filter criteria and
// renders every change into its presenter.
type DashboardService struct {
	repo     repository.LogRepo
	view     render.Presenter
	log      *logger.Logger
	metrics  *metrics.Metrics
	gen      *TestLogGenerator
	pageSize int

	mu      sync.Mutex
	allLogs []logdash.LogEntry
	filters logdash.FilterCriteria
}

// DashboardOptions tunes a DashboardService; zero values take defaults.
type DashboardOptions struct {
	PageSize  int
	Generator *TestLogGenerator
	Metrics   *metrics.Metrics
	Logger    *logger.Logger
}

func NewDashboardService(repo repository.LogRepo, view render.Presenter, opts DashboardOptions) *DashboardService {
	if view == nil {
		view = render.Discard
	}
	if opts.PageSize <= 0 {
		opts.PageSize = render.PageSize
	}
	if opts.Generator == nil {
		opts.Generator = NewTestLogGenerator(0)
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &DashboardService{
		repo:     repo,
		view:     view,
		log:      opts.Logger,
		metrics:  opts.Metrics,
		gen:      opts.Generator,
		pageSize: opts.PageSize,
		allLogs:  []logdash.LogEntry{},
	}
}

// LoadDashboard fetches logs and stats in parallel and re-renders everything.
// Failures are logged and shown as a transient error; they never propagate.
func (s *DashboardService) LoadDashboard(ctx context.Context) {
	s.view.RenderLoading()

	page, stats, err := s.fetchAll(ctx, s.pageSize)
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		// the caller went away; nothing failed
		s.log.Debugw("dashboard_load_canceled", "err", err)
		return
	}
	s.metrics.RefreshResult(err)
	if err != nil {
		s.log.Errorw("dashboard_load_failed", "err", err)
		s.view.RenderTransientError(err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.allLogs = page.Logs
	s.view.RenderStats(stats)
	s.filters.Service = s.view.RenderServiceOptions(s.allLogs, s.filters.Service)
	s.applyLocked()
	s.log.Debugw("dashboard_loaded", "logs", len(page.Logs), "total", stats.TotalLogs)
}

// fetchAll runs both reads concurrently; either failure fails the pair.
func (s *DashboardService) fetchAll(ctx context.Context, limit int) (logdash.LogPage, logdash.Stats, error) {
	var (
		page  logdash.LogPage
		stats logdash.Stats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.repo.FetchLogs(gctx, limit)
		page = p
		return err
	})
	g.Go(func() error {
		st, err := s.repo.FetchStats(gctx)
		stats = st
		return err
	})
	if err := g.Wait(); err != nil {
		return logdash.LogPage{}, logdash.Stats{}, fmt.Errorf("load dashboard: %w", err)
	}
	return page, stats, nil
}

// AddTestLog creates a random entry and reloads. On failure the user is
// alerted and the error returned.
func (s *DashboardService) AddTestLog(ctx context.Context) error {
	entry := s.gen.Next()

	s.view.SetControl(render.ControlAddTest, labelAdding, true)
	defer s.view.SetControl(render.ControlAddTest, render.DefaultLabels[render.ControlAddTest], false)

	if _, err := s.repo.CreateLog(ctx, entry); err != nil {
		s.log.Errorw("test_log_create_failed", "err", err, "service", entry.Service, "level", entry.Level)
		s.view.Alert(alertAddFailed)
		return fmt.Errorf("add test log: %w", err)
	}
	s.log.Infow("test_log_created", "service", entry.Service, "level", entry.Level)
	s.LoadDashboard(ctx)
	return nil
}

// ClearAllLogs deletes every log after confirm approves. It reports whether
// the clear was attempted; a declined confirmation returns false, nil.
func (s *DashboardService) ClearAllLogs(ctx context.Context, confirm ConfirmFunc) (bool, error) {
	if confirm == nil || !confirm(ClearPrompt) {
		return false, nil
	}

	s.view.SetControl(render.ControlClear, labelClearing, true)
	defer s.view.SetControl(render.ControlClear, render.DefaultLabels[render.ControlClear], false)

	ack, err := s.repo.ClearLogs(ctx)
	if err != nil {
		s.log.Errorw("logs_clear_failed", "err", err)
		s.view.Alert(alertClearFailed)
		return true, fmt.Errorf("clear logs: %w", err)
	}
	s.log.Infow("logs_cleared", "deleted", ack.Deleted)
	s.LoadDashboard(ctx)
	return true, nil
}

// LoadMore refetches with a limit one page above the current count and
// replaces the list wholesale, since the service returns the full set up to
// the limit.
func (s *DashboardService) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	limit := len(s.allLogs) + s.pageSize
	s.mu.Unlock()

	s.view.SetControl(render.ControlLoadMore, labelLoading, false)
	page, err := s.repo.FetchLogs(ctx, limit)
	if err != nil {
		s.log.Errorw("load_more_failed", "err", err, "limit", limit)
		s.view.SetControl(render.ControlLoadMore, labelRetry, false)
		return fmt.Errorf("load more: %w", err)
	}

	s.mu.Lock()
	s.allLogs = page.Logs
	s.applyLocked()
	s.mu.Unlock()

	s.view.SetControl(render.ControlLoadMore, render.DefaultLabels[render.ControlLoadMore], false)
	return nil
}

// SetFilters replaces all criteria and re-renders synchronously.
func (s *DashboardService) SetFilters(c logdash.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = c
	s.view.RenderFilters(c)
	s.applyLocked()
}

func (s *DashboardService) SetLevel(level string) {
	s.updateFilters(func(c *logdash.FilterCriteria) { c.Level = level })
}

func (s *DashboardService) SetService(service string) {
	s.updateFilters(func(c *logdash.FilterCriteria) { c.Service = service })
}

func (s *DashboardService) SetSearch(search string) {
	s.updateFilters(func(c *logdash.FilterCriteria) { c.Search = search })
}

func (s *DashboardService) updateFilters(fn func(*logdash.FilterCriteria)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.filters)
	s.view.RenderFilters(s.filters)
	s.applyLocked()
}

// applyLocked re-renders the list from allLogs and filters; s.mu must be held.
func (s *DashboardService) applyLocked() {
	filtered := ApplyFilters(s.allLogs, s.filters)
	s.view.RenderLogList(filtered)
	s.metrics.SetLogCounts(len(s.allLogs), len(filtered))
}

// Filters returns the current criteria.
func (s *DashboardService) Filters() logdash.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Logs returns a copy of the in-memory list.
func (s *DashboardService) Logs() []logdash.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]logdash.LogEntry(nil), s.allLogs...)
}

// Filtered returns the entries currently rendered.
func (s *DashboardService) Filtered() []logdash.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]logdash.LogEntry(nil), ApplyFilters(s.allLogs, s.filters)...)
}
