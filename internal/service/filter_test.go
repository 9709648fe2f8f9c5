package service

import (
	"strings"
	"testing"

	"logdash"
)

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	logs := []logdash.LogEntry{
		{Level: "info", Service: "api", Message: "User signed in"},
		{Level: "error", Service: "db", Message: "Connection ERROR to primary"},
		{Level: "error", Service: "api", Message: "Upstream error"},
		{Level: "warning", Service: "auth", Message: "Rate limit reached"},
	}

	tests := []struct {
		name     string
		criteria logdash.FilterCriteria
		want     []int
	}{
		{"level only", logdash.FilterCriteria{Level: "error"}, []int{1, 2}},
		{"service only", logdash.FilterCriteria{Service: "api"}, []int{0, 2}},
		{"search is case-insensitive", logdash.FilterCriteria{Search: "error"}, []int{1, 2}},
		{"all three combined", logdash.FilterCriteria{Level: "error", Service: "api", Search: "UPSTREAM"}, []int{2}},
		{"level exact match only", logdash.FilterCriteria{Level: "err"}, nil},
		{"service exact match only", logdash.FilterCriteria{Service: "ap"}, nil},
		{"no match", logdash.FilterCriteria{Search: "nothing like this"}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ApplyFilters(logs, tc.criteria)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d entries, want %d: %+v", len(got), len(tc.want), got)
			}
			for i, idx := range tc.want {
				if got[i].Message != logs[idx].Message {
					t.Fatalf("entry %d = %q, want %q", i, got[i].Message, logs[idx].Message)
				}
			}
		})
	}
}

func TestApplyFilters_IdentityOnEmptyCriteria(t *testing.T) {
	t.Parallel()

	logs := makeLogs(5)
	got := ApplyFilters(logs, logdash.FilterCriteria{})
	if len(got) != len(logs) || &got[0] != &logs[0] {
		t.Fatalf("empty criteria must return the input unchanged")
	}
	if got := ApplyFilters(nil, logdash.FilterCriteria{Level: "info"}); len(got) != 0 {
		t.Fatalf("nil input must yield no entries")
	}
}

// Every result is a member of the input, in input order, and satisfies
// every predicate.
func TestApplyFilters_SubsetProperty(t *testing.T) {
	t.Parallel()

	logs := makeLogs(60)
	criteria := []logdash.FilterCriteria{
		{},
		{Level: logdash.LevelError},
		{Service: "db"},
		{Search: "1"},
		{Level: logdash.LevelInfo, Service: "api", Search: "message 3"},
		{Level: logdash.LevelWarning, Search: "5"},
	}

	for _, c := range criteria {
		got := ApplyFilters(logs, c)
		pos := 0
		for _, e := range got {
			for pos < len(logs) && logs[pos].Message != e.Message {
				pos++
			}
			if pos == len(logs) {
				t.Fatalf("%+v: %q not found in order", c, e.Message)
			}
			pos++

			if c.Level != "" && e.Level != c.Level {
				t.Fatalf("%+v: level mismatch %+v", c, e)
			}
			if c.Service != "" && e.Service != c.Service {
				t.Fatalf("%+v: service mismatch %+v", c, e)
			}
			if c.Search != "" && !strings.Contains(strings.ToLower(e.Message), strings.ToLower(c.Search)) {
				t.Fatalf("%+v: search mismatch %+v", c, e)
			}
		}
	}
}
