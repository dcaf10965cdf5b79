package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"holistic-daily/internal/model"
	"holistic-daily/pkg/jwt"
	"holistic-daily/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(mw Middleware, handlers ...gin.HandlerFunc) (*gin.Engine, *model.Scope) {
	var seen model.Scope
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		seen = GetScope(c)
		c.Status(http.StatusNoContent)
	})
	r.GET("/", chain...)
	return r, &seen
}

func TestAuth(t *testing.T) {
	jm := jwt.New("secret", "holistic-daily")
	mw := New(log.NewNop(), jm, 60)
	token, _ := jm.Generate("alice")

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusNoContent, wantUser: "alice"},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, seen := newTestEngine(mw, mw.Auth())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if seen.UserID != tt.wantUser {
				t.Errorf("UserID = %q, want %q", seen.UserID, tt.wantUser)
			}
		})
	}
}

func TestOptionalAuthAndSession(t *testing.T) {
	jm := jwt.New("secret", "holistic-daily")
	mw := New(log.NewNop(), jm, 60)
	r, seen := newTestEngine(mw, mw.OptionalAuth(), mw.Session())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("anonymous request rejected: %d", w.Code)
	}
	if seen.UserID != "" || seen.SessionID == "" {
		t.Errorf("unexpected scope %+v", *seen)
	}
	if w.Header().Get(SessionHeader) != seen.SessionID {
		t.Error("issued session id must be echoed back")
	}

	token, _ := jm.Generate("bob")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(SessionHeader, "sess-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if seen.UserID != "bob" || seen.SessionID != "sess-1" {
		t.Errorf("unexpected scope %+v", *seen)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), jwt.New("s", ""), 60)
	var got string
	r := gin.New()
	r.GET("/", mw.RequestID(), func(c *gin.Context) {
		got = log.RequestIDFromContext(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got != "req-1" || w.Header().Get(RequestIDHeader) != "req-1" {
		t.Errorf("request id = %q, header = %q", got, w.Header().Get(RequestIDHeader))
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request.
	mw := New(log.NewNop(), jwt.New("s", ""), 10)
	r, _ := newTestEngine(mw, mw.RateLimit())

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusNoContent || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	// Burst of one: only a single caller may pass however the requests interleave.
	rl := newRateLimiter(10)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("203.0.113.7") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed %d first requests, want 1", got)
	}
	if rl.limiters.Len() != 1 {
		t.Errorf("expected one limiter for the source, got %d", rl.limiters.Len())
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS([]string{"https://app.example.com"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/tasks/today", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "https://app.example.com" {
		t.Errorf("missing allow-origin header: %v", w.Header())
	}
	if w.Code == http.StatusTeapot {
		t.Error("preflight must not reach the wrapped handler")
	}
}
