package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// likeRepository 点赞数走缓存，点赞记录只在数据库
type likeRepository struct {
	db           domain.LikeRepository
	cache        domain.LikeCache
	rebuildGroup singleflight.Group
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db domain.LikeRepository, cache domain.LikeCache) *likeRepository {
	return &likeRepository{
		db:    db,
		cache: cache,
	}
}

func (r *likeRepository) GetLikeByCommentAndUser(ctx context.Context, commentID, userID string) (*domain.Like, error) {
	return r.db.GetLikeByCommentAndUser(ctx, commentID, userID)
}

func (r *likeRepository) CreateLike(ctx context.Context, commentID, userID string) (string, error) {
	id, err := r.db.CreateLike(ctx, commentID, userID)
	if err != nil {
		return "", err
	}
	r.invalidate(ctx, commentID)
	return id, nil
}

func (r *likeRepository) DeleteLike(ctx context.Context, commentID, userID string) (string, error) {
	id, err := r.db.DeleteLike(ctx, commentID, userID)
	if err != nil {
		return "", err
	}
	r.invalidate(ctx, commentID)
	return id, nil
}

func (r *likeRepository) CountLikeByCommentID(ctx context.Context, commentID string) (int64, error) {
	n, err := r.cache.GetLikeCount(ctx, commentID)
	if err == nil {
		return n, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to read like count of comment %s from cache: %v", commentID, err)
	}

	// 先读版本号再查库, 查库期间有写入时版本号变化, 回填会被拒绝
	gen, err := r.cache.GetLikeCountGeneration(ctx, commentID)
	if err != nil {
		logrus.Warnf("failed to read like count generation of comment %s: %v", commentID, err)
		return r.db.CountLikeByCommentID(ctx, commentID)
	}

	// 版本号进入key, 写入之后的读取不会合并到写入之前发起的查询
	res, err, _ := r.rebuildGroup.Do(fmt.Sprintf("likes:%s:%d", commentID, gen), func() (any, error) {
		n, err := r.db.CountLikeByCommentID(ctx, commentID)
		if err != nil {
			return nil, err
		}
		stored, err := r.cache.SetLikeCount(ctx, commentID, n, gen)
		if err != nil {
			logrus.Warnf("failed to cache like count of comment %s: %v", commentID, err)
		} else if !stored {
			logrus.Debugf("like count of comment %s changed while rebuilding, not cached", commentID)
		}
		return n, nil
	})
	if err != nil {
		return 0, err
	}
	return res.(int64), nil
}

// invalidate 写库之后递增版本号并删除缓存, 失败时旧值最多保留到TTL
func (r *likeRepository) invalidate(ctx context.Context, commentID string) {
	if err := r.cache.InvalidateLikeCount(ctx, commentID); err != nil {
		logrus.Errorf("failed to invalidate like count of comment %s: %v", commentID, err)
	}
}
