package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"logdash"
)

// Catalogs the synthetic test entries are drawn from.
var (
	testLevels   = []string{logdash.LevelInfo, logdash.LevelWarning, logdash.LevelError, logdash.LevelDebug}
	testServices = []string{"api", "frontend", "database", "auth", "worker"}
	testMessages = []string{
		"User signed in successfully",
		"Database connection error",
		"Processing finished",
		"Rate limit reached",
		"Automatic backup completed",
		"Data validation error",
	}
)

// TestLogGenerator produces random log entries for exercising the pipeline.
type TestLogGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewTestLogGenerator seeds the generator; a zero seed uses the clock.
func NewTestLogGenerator(seed int64) *TestLogGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &TestLogGenerator{rnd: rand.New(rand.NewSource(seed))}
}

// Next returns a new entry with synthetic user id, IP and duration.
// The timestamp is left to the log service.
func (g *TestLogGenerator) Next() logdash.LogEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	return logdash.LogEntry{
		Level:   testLevels[g.rnd.Intn(len(testLevels))],
		Service: testServices[g.rnd.Intn(len(testServices))],
		Message: testMessages[g.rnd.Intn(len(testMessages))],
		Data: map[string]any{
			"user_id":     g.rnd.Intn(1000),
			"ip":          fmt.Sprintf("192.168.1.%d", g.rnd.Intn(255)),
			"duration_ms": g.rnd.Intn(1000),
		},
	}
}
