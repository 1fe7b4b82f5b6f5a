package repository

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// threadRepository 协调层，协调缓存、布隆过滤器和数据库
type threadRepository struct {
	db    domain.ThreadDBRepository
	cache domain.ThreadCache
	bloom domain.BloomRepository
	ttl   time.Duration

	rebuildGroup singleflight.Group
	// bloom answers negatives only after it has been seeded; a missed id
	// disables it for every instance through the shared disabled state,
	// bloomDisabled covers the case where even that write failed
	bloomReady    atomic.Bool
	bloomDisabled atomic.Bool
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository 创建协调层repository
func NewThreadRepository(db domain.ThreadDBRepository, cache domain.ThreadCache, bloom domain.BloomRepository, ttl time.Duration) *threadRepository {
	return &threadRepository{
		db:    db,
		cache: cache,
		bloom: bloom,
		ttl:   ttl,
	}
}

// InitBloomFilter 把数据库中所有thread id写入布隆过滤器
// 扫描前记录禁用计数, 扫描期间有新的Disable时不恢复过滤器
func (r *threadRepository) InitBloomFilter(ctx context.Context, batch int64) error {
	version, err := r.bloom.DisabledVersion(ctx)
	if err != nil {
		return err
	}

	cursor := ""
	total := 0
	for {
		ids, err := r.db.FetchIDs(ctx, cursor, batch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err = r.bloom.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if int64(len(ids)) < batch {
			break
		}
	}

	enabled, err := r.bloom.Enable(ctx, version)
	if err != nil {
		return err
	}
	r.bloomReady.Store(true)
	if !enabled {
		logrus.Warnf("bloom filter seeded with %d thread ids but disabled by a concurrent write", total)
		return nil
	}
	logrus.Infof("bloom filter seeded with %d thread ids", total)
	return nil
}

func (r *threadRepository) bloomUsable() bool {
	return r.bloomReady.Load() && !r.bloomDisabled.Load()
}

// definitelyMissing 只有布隆过滤器明确不存在时返回true
func (r *threadRepository) definitelyMissing(ctx context.Context, threadID string) bool {
	if !r.bloomUsable() {
		return false
	}
	ok, err := r.bloom.Exists(ctx, threadID)
	if err != nil {
		logrus.Warnf("bloom filter lookup failed, thread %s: %v", threadID, err)
		return false
	}
	return !ok
}

// CreateThread 创建thread并加入布隆过滤器
func (r *threadRepository) CreateThread(ctx context.Context, t *domain.CreateThread) (*domain.CreatedThread, error) {
	created, err := r.db.CreateThread(ctx, t)
	if err != nil {
		return nil, err
	}
	if err = r.bloom.Add(ctx, created.ID); err != nil {
		logrus.Errorf("failed to add thread %s to bloom filter, filter disabled: %v", created.ID, err)
		if err = r.bloom.Disable(ctx); err != nil {
			r.bloomDisabled.Store(true)
			logrus.Errorf("failed to share disabled bloom filter state, disabled on this instance: %v", err)
		}
	}
	return created, nil
}

func (r *threadRepository) IsThreadExist(ctx context.Context, threadID string) (bool, error) {
	if r.definitelyMissing(ctx, threadID) {
		return false, nil
	}
	return r.db.IsThreadExist(ctx, threadID)
}

// GetThreadByID 使用逻辑过期策略避免缓存击穿
func (r *threadRepository) GetThreadByID(ctx context.Context, threadID string) (*domain.Thread, error) {
	if r.definitelyMissing(ctx, threadID) {
		return nil, nil
	}

	t, expired, err := r.cache.GetThreadWithLogicalExpire(ctx, threadID)
	if err == nil {
		if expired {
			go r.rebuildThreadCache(context.Background(), threadID)
		}
		return t, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to read thread %s from cache: %v", threadID, err)
	}

	// 缓存未命中，使用singleflight避免缓存击穿
	res, err, _ := r.rebuildGroup.Do("thread:"+threadID, func() (any, error) {
		return r.loadThread(ctx, threadID)
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.Thread), nil
}

func (r *threadRepository) loadThread(ctx context.Context, threadID string) (*domain.Thread, error) {
	t, err := r.db.GetThreadByID(ctx, threadID)
	if err != nil || t == nil {
		return t, err
	}
	if err = r.cache.SetThreadWithLogicalExpire(ctx, t, r.ttl); err != nil {
		logrus.Warnf("failed to cache thread %s: %v", threadID, err)
	}
	return t, nil
}

// rebuildThreadCache 异步重建thread缓存
func (r *threadRepository) rebuildThreadCache(ctx context.Context, threadID string) {
	_, err, _ := r.rebuildGroup.Do("rebuild:"+threadID, func() (any, error) {
		return r.loadThread(ctx, threadID)
	})
	if err != nil {
		logrus.Errorf("rebuildThreadCache failed for id %s: %v", threadID, err)
	}
}
