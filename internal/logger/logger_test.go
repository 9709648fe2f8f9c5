package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"bogus":    defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Errorf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(WarnLevel, FormatConsole, &buf)
	log.Infow("hidden")
	log.Warnw("dashboard_load_failed", "err", "boom")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "dashboard_load_failed") {
		t.Fatalf("missing warn line: %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(InfoLevel, FormatJSON, &buf)
	log.Infow("refresh_done", "logs", 3)
	_ = log.Sync()

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("not json: %v (%q)", err, buf.String())
	}
	if line["msg"] != "refresh_done" || line["level"] != "info" || line["logs"] != float64(3) {
		t.Fatalf("unexpected line: %+v", line)
	}
}

func TestNewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logdash.log")
	log, closer, err := NewFile(InfoLevel, FormatConsole, path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Infow("tui_started")
	_ = log.Sync()
	_ = closer.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "tui_started") {
		t.Fatalf("file missing line: %q", b)
	}
}

func TestGetIsSingletonAndNopIsSilent(t *testing.T) {
	a := Get(InfoLevel)
	b := Get(DebugLevel)
	if a != b {
		t.Fatalf("Get must return the same instance")
	}
	Nop().Errorw("ignored")
}
