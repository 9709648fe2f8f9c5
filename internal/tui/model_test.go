package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"logdash"
	"logdash/internal/models"
	"logdash/internal/service"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeDashboard struct {
	mu sync.Mutex

	view    models.View
	alerts  []string
	filters logdash.FilterCriteria
	addErr  error

	loads, adds, clears, mores int
}

func (f *fakeDashboard) LoadDashboard(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	f.view.Version++
}
func (f *fakeDashboard) AddTestLog(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds++
	if f.addErr != nil {
		f.alerts = append(f.alerts, "API error: unable to add the log")
	}
	return f.addErr
}
func (f *fakeDashboard) ClearAllLogs(ctx context.Context, confirm service.ConfirmFunc) (bool, error) {
	if !confirm("sure?") {
		return false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	return true, nil
}
func (f *fakeDashboard) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mores++
	return nil
}
func (f *fakeDashboard) SetFilters(c logdash.FilterCriteria) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = c
	f.view.Filters = c
	f.view.Version++
}
func (f *fakeDashboard) Filters() logdash.FilterCriteria {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filters
}
func (f *fakeDashboard) Snapshot() models.View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view
}
func (f *fakeDashboard) Version() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view.Version
}
func (f *fakeDashboard) DrainAlerts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.alerts
	f.alerts = nil
	return out
}

func newFake() *fakeDashboard {
	return &fakeDashboard{view: models.View{
		Version: 1,
		List:    models.ListEntries,
		Services: []models.ServiceOption{
			{Value: "", Label: "All services", Selected: true},
			{Value: "api", Label: "api"},
			{Value: "db", Label: "db"},
		},
		Cards: []models.LogCard{{Level: "error", Service: "api", Message: "disk full", Data: "{\n  \"a\": 1\n}"}},
	}}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds one key; commands are dropped.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// act feeds an action key and runs the controller call it schedules.
func act(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("key %q scheduled no action", msg.String())
	}
	done, ok := cmd().(actionDoneMsg)
	if !ok {
		t.Fatalf("key %q did not produce an action result", msg.String())
	}
	next, _ = m.Update(done)
	return next.(Model)
}

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func TestModel_Actions(t *testing.T) {
	f := newFake()
	m := sized(New(context.Background(), f))

	m = act(t, m, key("r"))
	m = act(t, m, key("t"))
	m = act(t, m, key("m"))
	if f.loads != 1 || f.adds != 1 || f.mores != 1 {
		t.Fatalf("calls: loads=%d adds=%d mores=%d", f.loads, f.adds, f.mores)
	}
	if m.busy != "" {
		t.Fatalf("busy must clear after completion, got %q", m.busy)
	}
	if m.view.Version != f.view.Version {
		t.Fatalf("model did not resync to version %d", f.view.Version)
	}
}

func TestModel_AddFailureShowsAlert(t *testing.T) {
	f := newFake()
	f.addErr = errors.New("down")
	m := sized(New(context.Background(), f))

	m = act(t, m, key("t"))
	if m.status != "API error: unable to add the log" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestModel_ClearNeedsConfirmation(t *testing.T) {
	f := newFake()
	m := sized(New(context.Background(), f))

	m = press(t, m, key("x"))
	if !m.confirming {
		t.Fatalf("x must ask for confirmation")
	}
	m = press(t, m, key("n"))
	if f.clears != 0 || m.confirming {
		t.Fatalf("declined clear must not call the controller (clears=%d)", f.clears)
	}

	m = press(t, m, key("x"))
	m = act(t, m, key("y"))
	if f.clears != 1 {
		t.Fatalf("confirmed clear calls = %d, want 1", f.clears)
	}
}

func TestModel_FilterKeys(t *testing.T) {
	f := newFake()
	m := sized(New(context.Background(), f))

	wantLevels := []string{"info", "warning", "error", "debug", ""}
	for _, want := range wantLevels {
		m = press(t, m, key("l"))
		if f.filters.Level != want {
			t.Fatalf("level = %q, want %q", f.filters.Level, want)
		}
	}

	for _, want := range []string{"api", "db", ""} {
		m = press(t, m, key("s"))
		if f.filters.Service != want {
			t.Fatalf("service = %q, want %q", f.filters.Service, want)
		}
	}

	m = press(t, m, key("/"))
	if !m.searching {
		t.Fatalf("/ must enter search mode")
	}
	m = press(t, m, key("d"))
	m = press(t, m, key("i"))
	if f.filters.Search != "di" {
		t.Fatalf("search = %q, want live update", f.filters.Search)
	}
	// q while searching is text, not quit
	m = press(t, m, key("q"))
	if f.filters.Search != "diq" {
		t.Fatalf("search = %q", f.filters.Search)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Fatalf("esc must leave search mode")
	}
}

func TestModel_PollPicksUpNewVersion(t *testing.T) {
	f := newFake()
	m := sized(New(context.Background(), f))

	f.LoadDashboard(context.Background()) // refresher moved the document
	next, cmd := m.Update(pollMsg{})
	m = next.(Model)
	if m.view.Version != 2 {
		t.Fatalf("version = %d, want 2", m.view.Version)
	}
	if cmd == nil {
		t.Fatalf("poll must reschedule itself")
	}
}

func TestModel_QuitAndView(t *testing.T) {
	f := newFake()
	m := sized(New(context.Background(), f))

	out := m.View()
	for _, want := range []string{"disk full", "api", "All services"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Fatalf("q must quit")
	} else if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q must return tea.Quit")
	}
}

func TestRenderList_States(t *testing.T) {
	if out := renderList(models.View{List: models.ListEmpty}); !strings.Contains(out, "No logs found") {
		t.Fatalf("empty state: %q", out)
	}
	if out := renderList(models.View{List: models.ListError, ListError: "cannot reach http://x:5000"}); !strings.Contains(out, "http://x:5000") {
		t.Fatalf("error state: %q", out)
	}
	out := renderList(models.View{List: models.ListEntries, LoadMoreVisible: true})
	if !strings.Contains(out, "Load more") {
		t.Fatalf("load more hint missing: %q", out)
	}
}
