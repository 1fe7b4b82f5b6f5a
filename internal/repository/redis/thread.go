package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/cache"
)

const (
	KeyThread = "thread:%s"
	// physical lifetime of a cached thread; the logical ttl is much shorter
	threadKeepAlive = 24 * time.Hour
)

type threadCache struct {
	client *redis.Client
	now    func() time.Time
}

var _ domain.ThreadCache = (*threadCache)(nil)

func NewThreadCache(client *redis.Client) *threadCache {
	return &threadCache{
		client: client,
		now:    time.Now,
	}
}

func (c *threadCache) GetThreadWithLogicalExpire(ctx context.Context, threadID string) (*domain.Thread, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyThread, threadID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, false, err
	}

	var entry cache.DataWithLogicalExpire[domain.Thread]
	if err = json.Unmarshal(data, &entry); err != nil {
		return nil, false, err
	}
	return &entry.Data, entry.IsLogicalExpired(c.now()), nil
}

func (c *threadCache) SetThreadWithLogicalExpire(ctx context.Context, t *domain.Thread, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(*t, ttl, c.now()))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyThread, t.ID), data, threadKeepAlive).Err()
}
