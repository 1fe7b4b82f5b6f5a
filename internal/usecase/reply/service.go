package reply

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
	}
}

func (s *service) Create(ctx context.Context, callerID, threadID, commentID string, p domain.Payload) (*domain.CreatedReply, error) {
	exists, err := s.threadRepo.IsThreadExist(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrCreateReplyThreadNotFound
	}

	c, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCreateReplyCommentNotFound
	}

	newReply, err := domain.NewCreateReply(p.
		With("owner", callerID).
		With("threadId", threadID).
		With("commentId", commentID))
	if err != nil {
		return nil, err
	}
	return s.replyRepo.CreateReply(ctx, newReply)
}

func (s *service) Delete(ctx context.Context, callerID, threadID, commentID, replyID string) error {
	exists, err := s.threadRepo.IsThreadExist(ctx, threadID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrDeleteReplyThreadNotFound
	}

	c, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrDeleteReplyCommentNotFound
	}

	r, err := s.replyRepo.GetReplyByID(ctx, replyID)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrDeleteReplyReplyNotFound
	}
	if r.Owner != callerID {
		return domain.ErrDeleteReplyNotOwner
	}

	return s.replyRepo.DeleteReplyByID(ctx, replyID, callerID)
}
