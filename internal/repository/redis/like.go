package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

const (
	KeyCommentLikes    = "comment:likes:%s"
	KeyCommentLikesGen = "comment:likes:gen:%s"

	// the generation must outlive every cached count it guards
	likeGenKeepAlive = 24 * time.Hour
)

// setLikeCountScript 只有版本号未变时才回填计数
var setLikeCountScript = redis.NewScript(`
	local gen = redis.call('GET', KEYS[2]) or '0'
	if gen ~= ARGV[1] then
		return 0 -- 回填期间有写入, 放弃
	end
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
	return 1
`)

type likeCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.LikeCache = (*likeCache)(nil)

// NewLikeCache caches like counts for ttl after each rebuild.
func NewLikeCache(client *redis.Client, ttl time.Duration) *likeCache {
	return &likeCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *likeCache) GetLikeCount(ctx context.Context, commentID string) (int64, error) {
	n, err := c.getInt(ctx, fmt.Sprintf(KeyCommentLikes, commentID))
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	}
	return n, err
}

func (c *likeCache) GetLikeCountGeneration(ctx context.Context, commentID string) (int64, error) {
	n, err := c.getInt(ctx, fmt.Sprintf(KeyCommentLikesGen, commentID))
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func (c *likeCache) SetLikeCount(ctx context.Context, commentID string, count, generation int64) (bool, error) {
	keys := []string{
		fmt.Sprintf(KeyCommentLikes, commentID),
		fmt.Sprintf(KeyCommentLikesGen, commentID),
	}
	args := []any{generation, count, c.ttl.Milliseconds()}

	res, err := setLikeCountScript.Run(ctx, c.client, keys, args...).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

func (c *likeCache) InvalidateLikeCount(ctx context.Context, commentID string) error {
	genKey := fmt.Sprintf(KeyCommentLikesGen, commentID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, likeGenKeepAlive)
		pipe.Del(ctx, fmt.Sprintf(KeyCommentLikes, commentID))
		return nil
	})
	return err
}

func (c *likeCache) getInt(ctx context.Context, key string) (int64, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
