package timefmt

import (
	"strconv"
	"time"
)

const (
	// DefaultLayout is day-first, matching the dashboard's original locale.
	DefaultLayout = "02/01/2006 15:04:05"

	JustNow = "just now"
)

// Formatter renders absolute timestamps with a fixed layout and location.
type Formatter struct {
	Layout   string
	Location *time.Location
}

// New returns a Formatter; empty layout or nil location fall back to defaults.
func New(layout string, loc *time.Location) Formatter {
	if layout == "" {
		layout = DefaultLayout
	}
	if loc == nil {
		loc = time.Local
	}
	return Formatter{Layout: layout, Location: loc}
}

// Absolute formats ts in the formatter's location.
func (f Formatter) Absolute(ts time.Time) string {
	layout := f.Layout
	if layout == "" {
		layout = DefaultLayout
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format(layout)
}

// FormatAbsolute formats ts with DefaultLayout in loc.
func FormatAbsolute(ts time.Time, loc *time.Location) string {
	return New("", loc).Absolute(ts)
}

// FormatRelative buckets now-ts into "just now", "{n}min", "{n}h" or "{n}d".
// Whole units are truncated, so exactly 60s is "1min" and 59.999s is "just now".
// The result is only valid at now; callers recompute it on every render.
func FormatRelative(ts, now time.Time) string {
	mins := int64(now.Sub(ts) / time.Minute)
	hours := mins / 60
	days := hours / 24

	switch {
	case mins < 1:
		return JustNow
	case mins < 60:
		return strconv.FormatInt(mins, 10) + "min"
	case hours < 24:
		return strconv.FormatInt(hours, 10) + "h"
	default:
		return strconv.FormatInt(days, 10) + "d"
	}
}

// ParseLocation resolves a configured timezone name; "" and "Local" map to time.Local.
func ParseLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
