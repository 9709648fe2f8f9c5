package render

import (
	"encoding/json"
	"fmt"
	"time"

	"logdash"
	"logdash/internal/models"
	"logdash/internal/timefmt"
)

// StatsPanel builds the summary strip; the last-log age is relative to now.
func StatsPanel(st logdash.Stats, now time.Time) models.StatsPanel {
	p := models.StatsPanel{
		Total:    st.TotalLogs,
		Errors:   st.LevelCount(logdash.LevelError),
		Warnings: st.LevelCount(logdash.LevelWarning),
		LastLog:  NoLastLog,
	}
	if st.LastLog != nil {
		p.LastLog = InvalidDate
		if !st.LastLog.Timestamp.IsZero() {
			p.LastLog = timefmt.FormatRelative(st.LastLog.Timestamp, now)
		}
	}
	return p
}

// DistinctServices returns the services present in logs in first-seen order.
func DistinctServices(logs []logdash.LogEntry) []string {
	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)
	for _, l := range logs {
		if _, ok := seen[l.Service]; ok {
			continue
		}
		seen[l.Service] = struct{}{}
		out = append(out, l.Service)
	}
	return out
}

// ServiceOptions builds the filter options behind the "all" sentinel and
// resolves the selection.
func ServiceOptions(logs []logdash.LogEntry, previous string) ([]models.ServiceOption, string) {
	services := DistinctServices(logs)

	selected := ""
	for _, s := range services {
		if s == previous {
			selected = previous
			break
		}
	}

	opts := make([]models.ServiceOption, 0, len(services)+1)
	opts = append(opts, models.ServiceOption{Value: "", Label: AllServicesLabel, Selected: selected == ""})
	for _, s := range services {
		opts = append(opts, models.ServiceOption{Value: s, Label: s, Selected: s == selected})
	}
	return opts, selected
}

// LogCards renders each entry; relative times are computed against now.
func LogCards(logs []logdash.LogEntry, f timefmt.Formatter, now time.Time) []models.LogCard {
	cards := make([]models.LogCard, 0, len(logs))
	for _, l := range logs {
		abs, rel := InvalidDate, InvalidDate
		if !l.Timestamp.IsZero() {
			abs, rel = f.Absolute(l.Timestamp), timefmt.FormatRelative(l.Timestamp, now)
		}
		cards = append(cards, models.LogCard{
			Level:    l.Level,
			Absolute: abs,
			Service:  l.Service,
			Relative: rel,
			Message:  l.Message,
			Data:     PrettyData(l.Data),
		})
	}
	return cards
}

// PrettyData pretty-prints structured data with two-space indentation,
// returning "" when there is nothing to show.
func PrettyData(data map[string]any) string {
	if len(data) == 0 {
		return ""
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(b)
}

// ConnectivityError is the message shown when the first load fails.
func ConnectivityError(baseURL string) string {
	return fmt.Sprintf("Unable to reach the log API (%s). Check that the backend is running.", baseURL)
}
