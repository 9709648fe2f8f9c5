package repository

import (
	"context"

	"logdash"
	"logdash/internal/logger"
	"logdash/internal/metrics"
)

// Operation names carried by RequestError and metrics labels.
const (
	OpList   = "list"
	OpStats  = "stats"
	OpCreate = "create"
	OpClear  = "clear"
)

// DefaultLimit is the page size used when FetchLogs gets a non-positive limit.
const DefaultLimit = 100

// LogRepo is the remote log service as seen by the dashboard.
type LogRepo interface {
	FetchLogs(ctx context.Context, limit int) (logdash.LogPage, error)
	FetchStats(ctx context.Context) (logdash.Stats, error)
	CreateLog(ctx context.Context, e logdash.LogEntry) (logdash.LogEntry, error)
	ClearLogs(ctx context.Context) (logdash.Ack, error)
}

type Repository struct {
	Logs LogRepo
}

func NewRepository(cfg HTTPConfig, m *metrics.Metrics, log *logger.Logger) *Repository {
	return &Repository{
		Logs: NewLogHTTP(cfg, m, log),
	}
}
