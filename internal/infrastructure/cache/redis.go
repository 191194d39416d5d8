package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionCache хранит выданные сессионные токены. Logout удаляет запись,
// после чего токен перестает приниматься даже до истечения exp.
type SessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

func (c *SessionCache) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return c.client.Set(ctx, "session_token:"+token, userID, ttl).Err()
}

func (c *SessionCache) Check(ctx context.Context, token string) (string, error) {
	val, err := c.client.Get(ctx, "session_token:"+token).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *SessionCache) Delete(ctx context.Context, token string) error {
	return c.client.Del(ctx, "session_token:"+token).Err()
}
