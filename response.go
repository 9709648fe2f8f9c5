package logdash

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Known log levels. The log service accepts any string; these are the ones
// the dashboard counts and offers as filters.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
	LevelDebug   = "debug"
)

// Levels lists the filterable levels in display order.
var Levels = []string{LevelInfo, LevelWarning, LevelError, LevelDebug}

// LogEntry is a single log record as served by the log service.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Service   string         `json:"service"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
}

// UnmarshalJSON decodes an entry, reading the timestamp leniently. A timestamp
// that cannot be read leaves Timestamp zero instead of failing the whole page.
func (e *LogEntry) UnmarshalJSON(b []byte) error {
	type plain LogEntry
	aux := struct {
		*plain
		Timestamp json.RawMessage `json:"timestamp"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	e.Timestamp = decodeTimestamp(aux.Timestamp)
	return nil
}

// timestampLayouts are tried in order. Zone-less layouts parse as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.RFC1123, // http.TimeFormat
	time.RFC1123Z,
}

// ParseTimestamp reads the timestamp forms log services commonly emit:
// RFC 3339 with or without fractional seconds, ISO 8601 without a zone
// (taken as UTC) and RFC 1123.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// decodeTimestamp accepts a JSON string in any ParseTimestamp form or a
// number of Unix milliseconds. Anything else yields the zero time.
func decodeTimestamp(raw json.RawMessage) time.Time {
	raw = json.RawMessage(strings.TrimSpace(string(raw)))
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}
		}
		t, err := ParseTimestamp(s)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	ms, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms)).UTC()
}

// HasData reports whether the entry carries structured data worth showing.
func (e LogEntry) HasData() bool {
	return len(e.Data) > 0
}

// LogPage is the body of GET /logs.
type LogPage struct {
	Logs []LogEntry `json:"logs"`
}

// Stats is the server-side summary returned by GET /stats.
type Stats struct {
	TotalLogs int            `json:"total_logs"`
	Levels    map[string]int `json:"levels"`
	LastLog   *LogEntry      `json:"last_log,omitempty"`
}

// LevelCount returns the count for level, zero when absent.
func (s Stats) LevelCount(level string) int {
	if s.Levels == nil {
		return 0
	}
	return s.Levels[level]
}

// Ack is the acknowledgement returned by DELETE /logs/clear.
type Ack struct {
	Message string `json:"message,omitempty"`
	Deleted int    `json:"deleted,omitempty"`
}

// FilterCriteria narrows the in-memory log list. Empty fields match everything.
type FilterCriteria struct {
	Level   string `json:"level"`
	Service string `json:"service"`
	Search  string `json:"search"` // case-insensitive substring of Message
}

// IsZero reports whether no criterion is set.
func (c FilterCriteria) IsZero() bool {
	return c.Level == "" && c.Service == "" && c.Search == ""
}
