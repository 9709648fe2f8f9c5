package render

import (
	"sync"
	"time"

	"logdash"
	"logdash/internal/models"
	"logdash/internal/timefmt"
)

// DocumentOptions configures a Document.
type DocumentOptions struct {
	APIBaseURL string
	PageSize   int
	Formatter  timefmt.Formatter
	Now        func() time.Time
}

// Document is the in-memory rendering target shared by the web and terminal
// surfaces. Every mutation bumps Version so watchers can detect changes.
type Document struct {
	mu       sync.RWMutex
	view     models.View
	fmt      timefmt.Formatter
	now      func() time.Time
	pageSize int
}

func NewDocument(opts DocumentOptions) *Document {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.PageSize <= 0 {
		opts.PageSize = PageSize
	}
	controls := make(map[string]models.ControlState, len(DefaultLabels))
	for id, label := range DefaultLabels {
		controls[id] = models.ControlState{Label: label}
	}
	d := &Document{
		fmt:      opts.Formatter,
		now:      opts.Now,
		pageSize: opts.PageSize,
		view: models.View{
			APIBaseURL: opts.APIBaseURL,
			Stats:      models.StatsPanel{LastLog: NoLastLog},
			Services:   []models.ServiceOption{{Value: "", Label: AllServicesLabel, Selected: true}},
			List:       models.ListBlank,
			Controls:   controls,
		},
	}
	d.view.RenderedAt = opts.Now()
	return d
}

// touch must be called with mu held.
func (d *Document) touch() {
	d.view.Version++
	d.view.RenderedAt = d.now()
}

func (d *Document) RenderStats(st logdash.Stats) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view.Stats = StatsPanel(st, d.now())
	d.view.Banner = ""
	d.touch()
}

func (d *Document) RenderServiceOptions(logs []logdash.LogEntry, previous string) string {
	opts, selected := ServiceOptions(logs, previous)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.view.Services = opts
	d.view.Filters.Service = selected
	d.touch()
	return selected
}

func (d *Document) RenderFilters(c logdash.FilterCriteria) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view.Filters = c
	for i := range d.view.Services {
		d.view.Services[i].Selected = d.view.Services[i].Value == c.Service
	}
	d.touch()
}

func (d *Document) RenderLogList(filtered []logdash.LogEntry) {
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.view.ListError = ""
	if len(filtered) == 0 {
		d.view.List = models.ListEmpty
		d.view.Cards = nil
		d.view.LoadMoreVisible = false
		d.touch()
		return
	}
	d.view.List = models.ListEntries
	d.view.Cards = LogCards(filtered, d.fmt, now)
	d.view.LoadMoreVisible = len(filtered) >= d.pageSize
	d.touch()
}

func (d *Document) RenderLoading() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.view.List != models.ListBlank {
		return
	}
	d.view.List = models.ListLoading
	d.touch()
}

func (d *Document) RenderTransientError(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view.Banner = msg
	if d.view.List == models.ListLoading {
		d.view.List = models.ListError
		d.view.ListError = ConnectivityError(d.view.APIBaseURL)
	}
	d.touch()
}

func (d *Document) SetControl(id, label string, disabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.view.Controls[id]; !ok {
		return
	}
	d.view.Controls[id] = models.ControlState{Label: label, Disabled: disabled}
	d.touch()
}

func (d *Document) Alert(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view.Alerts = append(d.view.Alerts, msg)
	d.touch()
}

// DrainAlerts returns pending alerts and clears the queue.
func (d *Document) DrainAlerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	alerts := d.view.Alerts
	if len(alerts) == 0 {
		return nil
	}
	d.view.Alerts = nil
	d.touch()
	return alerts
}

// Version returns the current mutation counter.
func (d *Document) Version() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.view.Version
}

// Snapshot returns a deep copy of the current view.
func (d *Document) Snapshot() models.View {
	d.mu.RLock()
	defer d.mu.RUnlock()

	v := d.view
	v.Services = append([]models.ServiceOption(nil), d.view.Services...)
	v.Cards = append([]models.LogCard(nil), d.view.Cards...)
	v.Alerts = append([]string(nil), d.view.Alerts...)
	v.Controls = make(map[string]models.ControlState, len(d.view.Controls))
	for id, c := range d.view.Controls {
		v.Controls[id] = c
	}
	return v
}
