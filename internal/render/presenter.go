package render

import (
	"logdash"
)

// Control identifiers for action buttons.
const (
	ControlRefresh  = "refresh"
	ControlAddTest  = "add_test"
	ControlClear    = "clear"
	ControlLoadMore = "load_more"
)

// DefaultLabels are the idle labels of every known control.
var DefaultLabels = map[string]string{
	ControlRefresh:  "Refresh",
	ControlAddTest:  "+ Test log",
	ControlClear:    "Clear",
	ControlLoadMore: "Load more",
}

const (
	// PageSize is both the default fetch limit and the load-more threshold.
	PageSize = 100

	AllServicesLabel = "All services"
	NoLastLog        = "none"
	InvalidDate      = "invalid date"
	EmptyTitle       = "No logs found"
	EmptyHint        = "No log matches the current filters."
)

// Presenter is the presentation boundary the dashboard controller renders into.
// Implementations must ignore control ids they do not know.
type Presenter interface {
	RenderStats(stats logdash.Stats)
	// RenderServiceOptions rebuilds the service filter and returns the
	// effective selection: previous if still offered, else "".
	RenderServiceOptions(logs []logdash.LogEntry, previous string) string
	RenderFilters(c logdash.FilterCriteria)
	RenderLogList(filtered []logdash.LogEntry)
	// RenderLoading shows the placeholder only when the list never held content.
	RenderLoading()
	RenderTransientError(msg string)
	SetControl(id, label string, disabled bool)
	Alert(msg string)
}

// Discard is a Presenter that renders nothing but still resolves the
// service selection.
var Discard Presenter = discard{}

type discard struct{}

func (discard) RenderStats(logdash.Stats) {}
func (discard) RenderServiceOptions(logs []logdash.LogEntry, previous string) string {
	_, selected := ServiceOptions(logs, previous)
	return selected
}
func (discard) RenderFilters(logdash.FilterCriteria) {}
func (discard) RenderLogList([]logdash.LogEntry) {}
func (discard) RenderLoading() {}
func (discard) RenderTransientError(string) {}
func (discard) SetControl(string, string, bool) {}
func (discard) Alert(string) {}
