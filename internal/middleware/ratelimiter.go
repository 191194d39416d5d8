package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Store — бекенд счетчиков фиксированного окна. Redis для нескольких
// инстансов, Memory для одного. Никаких process-wide синглтонов:
// лимитер и его стор внедряются явно.
type Store interface {
	// Incr увеличивает счетчик ключа и возвращает текущее значение
	// и остаток окна. Первое обращение открывает окно.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}

	// Если это первый запрос (count == 1), ставим время жизни ключу
	if count == 1 {
		s.client.Expire(ctx, key, window)
		return count, window, nil
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	return count, ttl, nil
}

type memoryBucket struct {
	count   int64
	resetAt time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*memoryBucket
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*memoryBucket)}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok || !b.resetAt.After(now) {
		b = &memoryBucket{count: 0, resetAt: now.Add(window)}
		s.buckets[key] = b
	}
	b.count++
	return b.count, b.resetAt.Sub(now), nil
}

type RateLimiter struct {
	store Store
}

func NewRateLimiter(store Store) *RateLimiter {
	return &RateLimiter{store: store}
}

func (rl *RateLimiter) Limit(keyPrefix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		key := fmt.Sprintf("rate_limit:%s:%s", keyPrefix, ip)

		count, ttl, err := rl.store.Incr(c.Request.Context(), key, window)
		if err != nil {
			// Стор недоступен — пропускаем, лимит не повод ронять запросы
			c.Next()
			return
		}

		if count > int64(limit) {
			retryAfter := int(ttl.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
