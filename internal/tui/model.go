package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"logdash"
	"logdash/internal/models"
	"logdash/internal/render"
	"logdash/internal/service"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dashboard is what the terminal surface drives and reads.
type Dashboard interface {
	service.Controller
	service.Viewer
}

const (
	actionRefresh  = "refresh"
	actionAddTest  = "add test log"
	actionClear    = "clear"
	actionLoadMore = "load more"

	defaultPoll = 250 * time.Millisecond

	headerHeight = 6
	footerHeight = 3
)

// Model is the bubbletea model of the terminal dashboard. All state lives in
// the controller and its document; the model keeps the last snapshot.
type Model struct {
	dash Dashboard
	ctx  context.Context
	poll time.Duration

	width  int
	height int
	ready  bool

	viewport viewport.Model
	spinner  spinner.Model
	search   textinput.Model

	view       models.View
	searching  bool
	confirming bool
	busy       string
	status     string
}

// New builds a model over dash. ctx bounds every controller call.
func New(ctx context.Context, dash Dashboard) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	ti := textinput.New()
	ti.Placeholder = "search messages"
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.SetValue(dash.Filters().Search)

	return Model{
		dash:    dash,
		ctx:     ctx,
		poll:    defaultPoll,
		spinner: sp,
		search:  ti,
		view:    dash.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.poll, func(t time.Time) tea.Msg { return pollMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - headerHeight - footerHeight
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = h
		}
		m.refreshContent()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case pollMsg:
		if m.dash.Version() != m.view.Version {
			m.sync()
		}
		cmds = append(cmds, m.tick())

	case actionDoneMsg:
		m.busy = ""
		m.status = ""
		if msg.err != nil {
			m.status = fmt.Sprintf("%s failed", msg.action)
		}
		if alerts := m.dash.DrainAlerts(); len(alerts) > 0 {
			m.status = strings.Join(alerts, "; ")
		}
		m.sync()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.confirming {
		m.confirming = false
		if msg.String() == "y" {
			return m.run(actionClear, func(ctx context.Context) error {
				_, err := m.dash.ClearAllLogs(ctx, func(string) bool { return true })
				return err
			})
		}
		m.status = "clear cancelled"
		return m, nil
	}

	if m.searching {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.setFilters(func(c *logdash.FilterCriteria) { c.Search = m.search.Value() })
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		return m.run(actionRefresh, func(ctx context.Context) error {
			m.dash.LoadDashboard(ctx)
			return nil
		})
	case "t":
		return m.run(actionAddTest, m.dash.AddTestLog)
	case "m":
		return m.run(actionLoadMore, m.dash.LoadMore)
	case "x":
		m.confirming = true
		m.status = service.ClearPrompt + " (y/N)"
		return m, nil
	case "l":
		m.setFilters(func(c *logdash.FilterCriteria) { c.Level = nextLevel(c.Level) })
		return m, nil
	case "s":
		m.setFilters(func(c *logdash.FilterCriteria) { c.Service = nextService(m.view.Services, c.Service) })
		return m, nil
	case "/":
		m.searching = true
		return m, m.search.Focus()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// run starts one controller call unless another is in flight.
func (m Model) run(action string, fn func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	if m.busy != "" {
		return m, nil
	}
	m.busy = action
	ctx := m.ctx
	return m, func() tea.Msg {
		return actionDoneMsg{action: action, err: fn(ctx)}
	}
}

func (m *Model) setFilters(fn func(*logdash.FilterCriteria)) {
	c := m.dash.Filters()
	fn(&c)
	m.dash.SetFilters(c)
	m.sync()
}

func (m *Model) sync() {
	m.view = m.dash.Snapshot()
	m.refreshContent()
}

// nextLevel cycles "" → info → warning → error → debug → "".
func nextLevel(current string) string {
	if current == "" {
		return logdash.Levels[0]
	}
	for i, l := range logdash.Levels {
		if l == current && i+1 < len(logdash.Levels) {
			return logdash.Levels[i+1]
		}
	}
	return ""
}

// nextService cycles through the offered options, wrapping to the "all" sentinel.
func nextService(opts []models.ServiceOption, current string) string {
	for i, o := range opts {
		if o.Value == current && i+1 < len(opts) {
			return opts[i+1].Value
		}
	}
	if len(opts) > 0 && current == "" {
		return opts[0].Value
	}
	return ""
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderList(m.view))
}

func renderList(v models.View) string {
	switch v.List {
	case models.ListBlank, models.ListLoading:
		return mutedStyle.Render("Loading logs...")
	case models.ListError:
		return bannerStyle.Render(v.ListError)
	case models.ListEmpty:
		return titleStyle.Render(render.EmptyTitle) + "\n" + mutedStyle.Render(render.EmptyHint)
	}

	var b strings.Builder
	for _, c := range v.Cards {
		fmt.Fprintf(&b, "%s %s %s %s  %s\n",
			levelBadge(c.Level),
			timestampStyle.Render(c.Absolute),
			serviceStyle.Render(c.Service),
			mutedStyle.Render(c.Relative),
			c.Message,
		)
		if c.Data != "" {
			b.WriteString(dataStyle.Render(c.Data))
			b.WriteString("\n")
		}
	}
	if v.LoadMoreVisible {
		b.WriteString(mutedStyle.Render("press m: " + controlLabel(v, render.ControlLoadMore)))
	}
	return b.String()
}

func controlLabel(v models.View, id string) string {
	if st, ok := v.Controls[id]; ok {
		return st.Label
	}
	return render.DefaultLabels[id]
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(panelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	v := m.view
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statStyle.Render(fmt.Sprintf("%d total", v.Stats.Total)),
		statStyle.Render(fmt.Sprintf("%d errors", v.Stats.Errors)),
		statStyle.Render(fmt.Sprintf("%d warnings", v.Stats.Warnings)),
		statStyle.Render("last "+v.Stats.LastLog),
	)

	level, svc := v.Filters.Level, v.Filters.Service
	if level == "" {
		level = "all"
	}
	if svc == "" {
		svc = render.AllServicesLabel
	}
	filters := fmt.Sprintf("level %s  service %s  %s",
		filterActiveStyle.Render(level), filterActiveStyle.Render(svc), m.search.View())

	title := titleStyle.Render("logdash") + "  " + mutedStyle.Render(v.APIBaseURL)
	lines := []string{title, stats, filters}
	if v.Banner != "" {
		lines = append(lines, bannerStyle.Render(v.Banner))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	status := m.status
	if m.busy != "" {
		status = m.spinner.View() + " " + m.busy + "..."
	}
	hints := []string{
		keyHint("r", controlLabel(m.view, render.ControlRefresh)),
		keyHint("t", controlLabel(m.view, render.ControlAddTest)),
		keyHint("x", controlLabel(m.view, render.ControlClear)),
		keyHint("m", "more"),
		keyHint("l", "level"),
		keyHint("s", "service"),
		keyHint("/", "search"),
		keyHint("q", "quit"),
	}
	return status + "\n" + strings.Join(hints, "  ")
}

// Run starts the terminal dashboard and blocks until the user quits or ctx ends.
func Run(ctx context.Context, dash Dashboard) error {
	p := tea.NewProgram(New(ctx, dash), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
