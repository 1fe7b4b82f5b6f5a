package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	likeRepo    domain.LikeRepository
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(t domain.ThreadRepository, c domain.CommentRepository, l domain.LikeRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		likeRepo:    l,
	}
}

// Toggle flips the caller's like on a comment and returns the new state.
//
// The lookup and the write are not atomic. The storage keeps at most one like
// per (comment, user), so a concurrent toggle that wins the race shows up here
// as ErrConflict on create or ErrNotFound on delete; both mean the pair already
// is in the state this call was moving it to.
func (s *service) Toggle(ctx context.Context, callerID, threadID, commentID string) (domain.LikeState, error) {
	exists, err := s.threadRepo.IsThreadExist(ctx, threadID)
	if err != nil {
		return domain.NotLiked, err
	}
	if !exists {
		return domain.NotLiked, domain.ErrLikeUnlikeThreadNotFound
	}

	c, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return domain.NotLiked, err
	}
	if c == nil {
		return domain.NotLiked, domain.ErrLikeUnlikeCommentNotFound
	}

	existing, err := s.likeRepo.GetLikeByCommentAndUser(ctx, commentID, callerID)
	if err != nil {
		return domain.NotLiked, err
	}

	if existing != nil {
		_, err = s.likeRepo.DeleteLike(ctx, commentID, callerID)
		if errors.Is(err, domain.ErrNotFound) {
			logrus.Warnf("like of user %s on comment %s already removed", callerID, commentID)
			err = nil
		}
		if err != nil {
			return domain.Liked, err
		}
		return domain.NotLiked, nil
	}

	_, err = s.likeRepo.CreateLike(ctx, commentID, callerID)
	if errors.Is(err, domain.ErrConflict) {
		logrus.Warnf("like of user %s on comment %s already exists", callerID, commentID)
		err = nil
	}
	if err != nil {
		return domain.NotLiked, err
	}
	return domain.Liked, nil
}
