package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"logdash"
)

// fakeLogRepo is a minimal stub that satisfies repository.LogRepo.
// It is safe for the concurrent reads issued by LoadDashboard.
type fakeLogRepo struct {
	mu sync.Mutex

	// configured outputs
	logsFn    func(limit int) []logdash.LogEntry
	logsErr   error
	stats     logdash.Stats
	statsErr  error
	createErr error
	clearErr  error

	// captured inputs
	limits     []int
	created    []logdash.LogEntry
	clearCalls int
}

func (f *fakeLogRepo) FetchLogs(ctx context.Context, limit int) (logdash.LogPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, limit)
	if f.logsErr != nil {
		return logdash.LogPage{}, f.logsErr
	}
	if f.logsFn == nil {
		return logdash.LogPage{Logs: []logdash.LogEntry{}}, nil
	}
	return logdash.LogPage{Logs: f.logsFn(limit)}, nil
}

func (f *fakeLogRepo) FetchStats(ctx context.Context) (logdash.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats, f.statsErr
}

func (f *fakeLogRepo) CreateLog(ctx context.Context, e logdash.LogEntry) (logdash.LogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, e)
	return e, f.createErr
}

func (f *fakeLogRepo) ClearLogs(ctx context.Context) (logdash.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	return logdash.Ack{Message: "cleared"}, f.clearErr
}

func (f *fakeLogRepo) setLogs(fn func(limit int) []logdash.LogEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logsFn = fn
}

func (f *fakeLogRepo) lastLimit() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.limits) == 0 {
		return 0
	}
	return f.limits[len(f.limits)-1]
}

var fixedNow = time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC)

// makeLogs builds n entries cycling through services and levels.
func makeLogs(n int) []logdash.LogEntry {
	services := []string{"api", "db", "auth"}
	levels := []string{logdash.LevelInfo, logdash.LevelError, logdash.LevelWarning}
	out := make([]logdash.LogEntry, n)
	for i := range out {
		out[i] = logdash.LogEntry{
			Timestamp: fixedNow.Add(-time.Duration(i) * time.Second),
			Level:     levels[i%len(levels)],
			Service:   services[i%len(services)],
			Message:   fmt.Sprintf("Message %d", i),
		}
	}
	return out
}

func fixedLogs(n int) func(int) []logdash.LogEntry {
	logs := makeLogs(n)
	return func(int) []logdash.LogEntry { return logs }
}

// gatedRepo holds FetchLogs until FetchStats has started, so a load only
// succeeds when both reads are in flight at the same time. After wait
// elapses FetchLogs gives up with an error.
type gatedRepo struct {
	*fakeLogRepo
	wait time.Duration

	// holdLogs keeps FetchLogs blocked until its context is done.
	holdLogs     bool
	logsCanceled chan struct{}

	statsStarted chan struct{}
	once         sync.Once
}

func newGatedRepo(inner *fakeLogRepo, holdLogs bool) *gatedRepo {
	return &gatedRepo{
		fakeLogRepo:  inner,
		wait:         2 * time.Second,
		holdLogs:     holdLogs,
		logsCanceled: make(chan struct{}),
		statsStarted: make(chan struct{}),
	}
}

func (g *gatedRepo) FetchStats(ctx context.Context) (logdash.Stats, error) {
	g.once.Do(func() { close(g.statsStarted) })
	return g.fakeLogRepo.FetchStats(ctx)
}

func (g *gatedRepo) FetchLogs(ctx context.Context, limit int) (logdash.LogPage, error) {
	select {
	case <-g.statsStarted:
	case <-time.After(g.wait):
		return logdash.LogPage{}, errors.New("stats were not requested while logs were in flight")
	}
	if g.holdLogs {
		select {
		case <-ctx.Done():
			close(g.logsCanceled)
			return logdash.LogPage{}, ctx.Err()
		case <-time.After(g.wait):
		}
	}
	return g.fakeLogRepo.FetchLogs(ctx, limit)
}
