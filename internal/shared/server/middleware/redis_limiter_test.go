package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisLimiterWindow(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := NewRedisLimiter(client, "test")
	rule := RateLimitRule{Rate: 1, Burst: 2}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, _, err := limiter.Allow(ctx, "1.2.3.4|DEFAULT", rule)
		if err != nil || !ok {
			t.Fatalf("request %d: expected allowed, got ok=%v err=%v", i+1, ok, err)
		}
	}
	ok, retryAfter, err := limiter.Allow(ctx, "1.2.3.4|DEFAULT", rule)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if ok || retryAfter <= 0 || retryAfter > 2*time.Second {
		t.Fatalf("expected rejection with retry within window, got ok=%v retry=%v", ok, retryAfter)
	}

	if ok, _, _ := limiter.Allow(ctx, "5.6.7.8|DEFAULT", rule); !ok {
		t.Fatalf("expected other keys to have their own window")
	}

	mr.FastForward(3 * time.Second)
	if ok, _, _ := limiter.Allow(ctx, "1.2.3.4|DEFAULT", rule); !ok {
		t.Fatalf("expected window to reset")
	}
}

func TestRedisLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, client := newTestRedis(t)

	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		Limiter: NewRedisLimiter(client, ""),
		Rules:   map[string]RateLimitRule{"DEFAULT": {Rate: 1, Burst: 1}},
	}))
	r.GET("/x", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/x", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/x", nil))

	if first.Code != http.StatusOK || second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 200 then 429, got %d then %d", first.Code, second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRedisLimiterStoreDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()
	_, _, err := NewRedisLimiter(client, "").Allow(context.Background(), "k", RateLimitRule{Rate: 1, Burst: 1})
	if err == nil {
		t.Fatalf("expected error when redis is unreachable")
	}
}
