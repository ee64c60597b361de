package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func rateLimitedRouter(clock *fakeClock, rule RateLimitRule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		Rule:    rule,
		Limiter: NewRateLimiter(clock.Now),
	}))
	r.POST("/api/readiness/calculate", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func post(r *gin.Engine, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/readiness/calculate", nil)
	req.RemoteAddr = remote
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRateLimitBurstThenRefill(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}
	r := rateLimitedRouter(clock, RateLimitRule{Rate: 1, Burst: 2})

	for i := 0; i < 2; i++ {
		if resp := post(r, "10.0.0.1:1000"); resp.Code != http.StatusCreated {
			t.Fatalf("request %d expected 201, got %d", i+1, resp.Code)
		}
	}
	if resp := post(r, "10.0.0.1:1000"); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("request 3 expected 429, got %d", resp.Code)
	}

	clock.now = clock.now.Add(time.Second)
	if resp := post(r, "10.0.0.1:1000"); resp.Code != http.StatusCreated {
		t.Fatalf("after refill expected 201, got %d", resp.Code)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}
	r := rateLimitedRouter(clock, RateLimitRule{Rate: 1, Burst: 1})

	if resp := post(r, "10.0.0.1:1000"); resp.Code != http.StatusCreated {
		t.Fatalf("client a expected 201, got %d", resp.Code)
	}
	if resp := post(r, "10.0.0.1:1000"); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("client a expected 429, got %d", resp.Code)
	}
	if resp := post(r, "10.0.0.2:1000"); resp.Code != http.StatusCreated {
		t.Fatalf("client b expected 201, got %d", resp.Code)
	}
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}
	r := rateLimitedRouter(clock, RateLimitRule{Rate: 2, Burst: 1})

	if resp := post(r, "10.0.0.1:1000"); resp.Code != http.StatusCreated {
		t.Fatalf("expected first request 201, got %d", resp.Code)
	}
	resp := post(r, "10.0.0.1:1000")
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if got := resp.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After 1, got %q", got)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "rate_limited" {
		t.Fatalf("expected error=rate_limited")
	}
	if payload["retryAfterMs"] != float64(500) {
		t.Fatalf("expected retryAfterMs 500, got %v", payload["retryAfterMs"])
	}
}

func TestRateLimitDisabled(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}
	r := rateLimitedRouter(clock, RateLimitRule{})

	for i := 0; i < 50; i++ {
		if resp := post(r, "10.0.0.1:1000"); resp.Code != http.StatusCreated {
			t.Fatalf("request %d expected 201, got %d", i+1, resp.Code)
		}
	}
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}
	l := NewRateLimiter(clock.Now)
	rule := RateLimitRule{Rate: 1, Burst: 1}

	l.Allow("old", rule)
	clock.now = clock.now.Add(clientIdleTTL + time.Second)
	l.sweep(clock.now)

	if _, ok := l.clients["old"]; ok {
		t.Fatalf("expected idle client to be swept")
	}
}
