package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveRequest("list", 200, 15*time.Millisecond)
	m.ObserveRequest("list", 200, 5*time.Millisecond)
	m.ObserveRequest("stats", 0, time.Millisecond)
	m.RefreshResult(nil)
	m.RefreshResult(errors.New("boom"))
	m.RefreshResult(errors.New("boom"))
	m.SetLogCounts(150, 42)

	if got := testutil.ToFloat64(m.apiRequests.WithLabelValues("list", "200")); got != 2 {
		t.Fatalf("list/200 = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.apiRequests.WithLabelValues("stats", "0")); got != 1 {
		t.Fatalf("stats/0 = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.refreshes.WithLabelValues(ResultError)); got != 2 {
		t.Fatalf("refresh errors = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.logsLoaded); got != 150 {
		t.Fatalf("logs_loaded = %v, want 150", got)
	}
	if got := testutil.ToFloat64(m.logsVisible); got != 42 {
		t.Fatalf("logs_visible = %v, want 42", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("list", 500, time.Second)
	m.RefreshResult(nil)
	m.SetLogCounts(1, 1)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("nil handler status = %d", w.Code)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RefreshResult(nil)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `logdash_refresh_total{result="ok"} 1`) {
		t.Fatalf("exposition missing refresh counter:\n%s", body)
	}
}
