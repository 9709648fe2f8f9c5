package handlers

import (
	"context"
	"net/http"
	"sync"

	"logdash"
	"logdash/internal/models"
	"logdash/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockController struct {
	mu sync.Mutex

	addErr   error
	clearErr error
	moreErr  error

	loadCalls  int
	addCalls   int
	clearCalls int
	moreCalls  int
	confirmed  []bool
	filters    logdash.FilterCriteria
	ctxErrs    []error // ctx.Err() seen by each action
}

func (m *mockController) LoadDashboard(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
	m.loadCalls++
}
func (m *mockController) AddTestLog(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
	m.addCalls++
	return m.addErr
}
func (m *mockController) ClearAllLogs(ctx context.Context, confirm service.ConfirmFunc) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
	ok := confirm != nil && confirm(service.ClearPrompt)
	m.confirmed = append(m.confirmed, ok)
	if !ok {
		return false, nil
	}
	m.clearCalls++
	return true, m.clearErr
}
func (m *mockController) LoadMore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
	m.moreCalls++
	return m.moreErr
}
func (m *mockController) SetFilters(c logdash.FilterCriteria) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filters = c
}
func (m *mockController) Filters() logdash.FilterCriteria {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filters
}

type mockViewer struct {
	mu     sync.Mutex
	view   models.View
	alerts []string
}

func (m *mockViewer) Snapshot() models.View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}
func (m *mockViewer) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view.Version
}
func (m *mockViewer) DrainAlerts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.alerts
	m.alerts = nil
	return out
}

// bump replaces the view with a newer version.
func (m *mockViewer) bump(v models.View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v.Version = m.view.Version + 1
	m.view = v
}

type mockRefresh struct{ running bool }

func (m *mockRefresh) Start(ctx context.Context) { m.running = true }
func (m *mockRefresh) Stop()                     { m.running = false }
func (m *mockRefresh) Running() bool             { return m.running }

// ---- Helpers ----

func newMockService() (*service.Service, *mockController, *mockViewer) {
	ctrl := &mockController{}
	viewer := &mockViewer{view: models.View{
		Version:    1,
		APIBaseURL: "http://logs.test:5000",
		List:       models.ListEntries,
		Stats:      models.StatsPanel{Total: 2, Errors: 1, LastLog: "just now"},
		Services: []models.ServiceOption{
			{Value: "", Label: "All services", Selected: true},
			{Value: "api", Label: "api"},
		},
		Cards: []models.LogCard{
			{Level: "error", Service: "api", Message: "<b>boom</b>", Relative: "just now", Data: "{\n  \"a\": 1\n}"},
			{Level: "info", Service: "api", Message: "ok", Relative: "2min"},
		},
		Controls: map[string]models.ControlState{},
	}}
	return &service.Service{Controller: ctrl, Viewer: viewer, AutoRefresh: &mockRefresh{}}, ctrl, viewer
}

// newTestRouter builds the full router with the given service.
func newTestRouter(s *service.Service) http.Handler {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, nil)
	return h.InitRoutes()
}
