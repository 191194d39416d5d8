package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMemoryStore_CountsWithinWindow(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, ttl, err := store.Incr(ctx, "k", time.Minute)
		if err != nil {
			t.Fatalf("incr: %v", err)
		}
		if count != i {
			t.Fatalf("count = %d, want %d", count, i)
		}
		if ttl <= 0 || ttl > time.Minute {
			t.Fatalf("ttl out of range: %v", ttl)
		}
	}

	// Разные ключи — разные счетчики
	count, _, err := store.Incr(ctx, "other", time.Minute)
	if err != nil {
		t.Fatalf("incr other: %v", err)
	}
	if count != 1 {
		t.Fatalf("other key count = %d, want 1", count)
	}
}

func TestMemoryStore_WindowExpires(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, _, err := store.Incr(ctx, "k", 10*time.Millisecond); err != nil {
		t.Fatalf("incr: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	count, _, err := store.Incr(ctx, "k", 10*time.Millisecond)
	if err != nil {
		t.Fatalf("incr after window: %v", err)
	}
	if count != 1 {
		t.Fatalf("expired window must reset the counter, got %d", count)
	}
}

func limitedRouter(limiter *RateLimiter, limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", limiter.Limit("login", limit, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimiter_AllowsUnderLimitAndRejectsOver(t *testing.T) {
	limiter := NewRateLimiter(NewMemoryStore())
	r := limitedRouter(limiter, 2, time.Minute)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("429 response missing Retry-After header")
	}
}

func TestRateLimiter_SeparatesClientsByIP(t *testing.T) {
	limiter := NewRateLimiter(NewMemoryStore())
	r := limitedRouter(limiter, 1, time.Minute)

	first := httptest.NewRequest(http.MethodPost, "/login", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	if w.Code != http.StatusOK {
		t.Fatalf("first client: status %d", w.Code)
	}

	// Второй клиент не делит лимит с первым
	second := httptest.NewRequest(http.MethodPost, "/login", nil)
	second.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, second)
	if w.Code != http.StatusOK {
		t.Fatalf("second client: status %d, want 200", w.Code)
	}
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("store is down")
}

func TestRateLimiter_FailsOpenOnStoreError(t *testing.T) {
	limiter := NewRateLimiter(failingStore{})
	r := limitedRouter(limiter, 1, time.Minute)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d blocked by a broken store: status %d", i+1, w.Code)
		}
	}
}
