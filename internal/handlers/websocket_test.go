package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"logdash/internal/models"
	"logdash/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialView(t *testing.T, s *service.Service) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil, nil)
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	q := u.Query()
	q.Set("interval_ms", "20") // fast ticks for the test
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readView(t *testing.T, conn *websocket.Conn, timeout time.Duration) (models.View, error) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		return models.View{}, err
	}
	if env.Type != wsTypeView || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var v models.View
	if err := json.Unmarshal(env.Data, &v); err != nil {
		t.Fatalf("unmarshal view: %v", err)
	}
	return v, nil
}

func TestWebSocket_ViewStream_InitialAndOnChange(t *testing.T) {
	s, _, viewer := newMockService()
	conn := dialView(t, s)

	v, err := readView(t, conn, time.Second)
	if err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if v.Version != 1 || len(v.Cards) != 2 {
		t.Fatalf("unexpected initial view: %+v", v)
	}

	viewer.bump(models.View{List: models.ListEmpty})
	v, err = readView(t, conn, time.Second)
	if err != nil {
		t.Fatalf("read after change: %v", err)
	}
	if v.Version != 2 || v.List != models.ListEmpty {
		t.Fatalf("unexpected updated view: %+v", v)
	}
}

func TestWebSocket_NoResendWithoutChange(t *testing.T) {
	s, _, _ := newMockService()
	conn := dialView(t, s)

	if _, err := readView(t, conn, time.Second); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	// several ticks elapse; the version never moves so nothing is sent
	if v, err := readView(t, conn, 200*time.Millisecond); err == nil {
		t.Fatalf("unexpected resend of version %d", v.Version)
	}
}
