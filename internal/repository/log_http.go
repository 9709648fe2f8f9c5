package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"logdash"
	"logdash/internal/logger"
	"logdash/internal/metrics"
)

// DefaultAPIPort is the log service port the dashboard targets when only a host is known.
const DefaultAPIPort = 5000

// HTTPConfig configures LogHTTP.
type HTTPConfig struct {
	BaseURL string
	Timeout time.Duration // zero means no client-side timeout
}

// ResolveBaseURL returns baseURL when set, else http://host:port.
// An empty host means localhost and a non-positive port means DefaultAPIPort.
func ResolveBaseURL(baseURL, host string, port int) string {
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		return strings.TrimRight(baseURL, "/")
	}
	if host == "" {
		host = "localhost"
	}
	if port <= 0 {
		port = DefaultAPIPort
	}
	return "http://" + host + ":" + strconv.Itoa(port)
}

// LogHTTP talks to the log service over its REST API.
type LogHTTP struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
	log        *logger.Logger
}

func NewLogHTTP(cfg HTTPConfig, m *metrics.Metrics, log *logger.Logger) *LogHTTP {
	if log == nil {
		log = logger.Nop()
	}
	return &LogHTTP{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    m,
		log:        log,
	}
}

// BaseURL returns the service root requests are built against.
func (r *LogHTTP) BaseURL() string { return r.baseURL }

// FetchLogs lists up to limit entries in server order.
func (r *LogHTTP) FetchLogs(ctx context.Context, limit int) (logdash.LogPage, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var page logdash.LogPage
	if err := r.do(ctx, OpList, http.MethodGet, "/logs?"+q.Encode(), nil, &page); err != nil {
		return logdash.LogPage{}, err
	}
	if page.Logs == nil {
		page.Logs = []logdash.LogEntry{}
	}
	return page, nil
}

// FetchStats returns the server-side summary.
func (r *LogHTTP) FetchStats(ctx context.Context) (logdash.Stats, error) {
	var st logdash.Stats
	if err := r.do(ctx, OpStats, http.MethodGet, "/stats", nil, &st); err != nil {
		return logdash.Stats{}, err
	}
	return st, nil
}

// CreateLog posts e and returns the stored entry.
func (r *LogHTTP) CreateLog(ctx context.Context, e logdash.LogEntry) (logdash.LogEntry, error) {
	body, err := json.Marshal(newLogRequest(e))
	if err != nil {
		return logdash.LogEntry{}, fmt.Errorf("marshal log entry: %w", err)
	}
	var created logdash.LogEntry
	if err := r.do(ctx, OpCreate, http.MethodPost, "/logs", body, &created); err != nil {
		return logdash.LogEntry{}, err
	}
	return created, nil
}

// ClearLogs deletes every entry on the service.
func (r *LogHTTP) ClearLogs(ctx context.Context) (logdash.Ack, error) {
	var ack logdash.Ack
	if err := r.do(ctx, OpClear, http.MethodDelete, "/logs/clear", nil, &ack); err != nil {
		return logdash.Ack{}, err
	}
	return ack, nil
}

// logRequest is the create payload; the service stamps the timestamp itself
// when it is omitted.
type logRequest struct {
	Timestamp *time.Time     `json:"timestamp,omitempty"`
	Level     string         `json:"level"`
	Service   string         `json:"service"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
}

func newLogRequest(e logdash.LogEntry) logRequest {
	req := logRequest{Level: e.Level, Service: e.Service, Message: e.Message, Data: e.Data}
	if !e.Timestamp.IsZero() {
		ts := e.Timestamp.UTC()
		req.Timestamp = &ts
	}
	return req
}

// do issues one request and decodes a 2xx JSON body into out.
func (r *LogHTTP) do(ctx context.Context, op, method, path string, body []byte, out any) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, rd)
	if err != nil {
		return &RequestError{Op: op, Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.metrics.ObserveRequest(op, 0, time.Since(start))
		r.log.Debugw("api_request_failed", "op", op, "err", err)
		return &RequestError{Op: op, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()
	r.metrics.ObserveRequest(op, resp.StatusCode, time.Since(start))
	r.log.Debugw("api_request", "op", op, "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RequestError{Op: op, Kind: KindStatus, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Op: op, Kind: KindParse, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}
