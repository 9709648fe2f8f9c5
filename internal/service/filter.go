package service

import (
	"strings"

	"logdash"
)

// ApplyFilters keeps the entries matching every set criterion, preserving
// input order. Level and service match exactly; search is a case-insensitive
// substring of the message. With no criterion set the input is returned as is.
func ApplyFilters(all []logdash.LogEntry, c logdash.FilterCriteria) []logdash.LogEntry {
	if c.IsZero() {
		return all
	}
	search := strings.ToLower(c.Search)

	out := make([]logdash.LogEntry, 0, len(all))
	for _, e := range all {
		if c.Level != "" && e.Level != c.Level {
			continue
		}
		if c.Service != "" && e.Service != c.Service {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Message), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}
