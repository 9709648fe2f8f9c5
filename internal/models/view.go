package models

import (
	"time"

	"logdash"
)

// ListState is what the log list area currently shows.
type ListState string

const (
	ListBlank   ListState = "blank"   // nothing rendered yet
	ListLoading ListState = "loading" // loading placeholder
	ListEmpty   ListState = "empty"   // no entry matches the filters
	ListEntries ListState = "entries"
	ListError   ListState = "error" // connectivity error replaced the placeholder
)

// StatsPanel is the summary strip above the list.
type StatsPanel struct {
	Total    int    `json:"total"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
	LastLog  string `json:"last_log"` // relative time or placeholder
}

// ServiceOption is one entry of the service filter; Value "" is the "all" sentinel.
type ServiceOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// LogCard is a rendered log entry.
type LogCard struct {
	Level    string `json:"level"`
	Absolute string `json:"absolute"`
	Service  string `json:"service"`
	Relative string `json:"relative"`
	Message  string `json:"message"`
	Data     string `json:"data,omitempty"` // pretty-printed JSON, empty when no data
}

// ControlState is the state of an action button.
type ControlState struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// View is a point-in-time snapshot of the dashboard document.
type View struct {
	Version    uint64    `json:"version"`
	RenderedAt time.Time `json:"rendered_at"`
	APIBaseURL string    `json:"api_base_url"`

	Stats    StatsPanel             `json:"stats"`
	Services []ServiceOption        `json:"services"`
	Filters  logdash.FilterCriteria `json:"filters"`

	List            ListState `json:"list"`
	Cards           []LogCard `json:"cards"`
	ListError       string    `json:"list_error,omitempty"`
	LoadMoreVisible bool      `json:"load_more_visible"`

	Controls map[string]ControlState `json:"controls"`
	Banner   string                  `json:"banner,omitempty"` // last transient error
	Alerts   []string                `json:"alerts,omitempty"` // pending user alerts
}
