package service

import (
	"context"
	"sync"
	"time"

	"logdash/internal/logger"
)

// DefaultRefreshInterval is the auto-refresh period.
const DefaultRefreshInterval = 30 * time.Second

// Refresher runs a load function once on start and then on every tick
// until stopped. A slow load delays the next one instead of overlapping it.
type Refresher struct {
	load     func(ctx context.Context)
	interval time.Duration
	log      *logger.Logger

	// newTicker is swapped in tests to drive ticks by hand.
	newTicker func(d time.Duration) (<-chan time.Time, func())

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRefresher(load func(ctx context.Context), interval time.Duration, log *logger.Logger) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Refresher{
		load:      load,
		interval:  interval,
		log:       log,
		newTicker: realTicker,
	}
}

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Start launches the loop in the background; calling it while running is a no-op.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	ticks, stop := r.newTicker(r.interval)
	r.cancel = cancel
	r.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		defer stop()
		r.Run(ctx, ticks)
	}(r.done)
	r.log.Infow("refresher_started", "interval", r.interval.String())
}

// Stop cancels the loop and waits for it to exit.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	r.log.Infow("refresher_stopped")
}

// Running reports whether the loop is active.
func (r *Refresher) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Run performs the initial load and then one per tick until ctx is done
// or ticks is closed.
func (r *Refresher) Run(ctx context.Context, ticks <-chan time.Time) {
	r.load(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				return
			}
			r.load(ctx)
		}
	}
}
