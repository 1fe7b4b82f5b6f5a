package comment

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
}

func (s *service) Create(ctx context.Context, callerID, threadID string, p domain.Payload) (*domain.CreatedComment, error) {
	exists, err := s.threadRepo.IsThreadExist(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrCreateCommentThreadNotFound
	}

	newComment, err := domain.NewCreateComment(p.With("owner", callerID).With("threadId", threadID))
	if err != nil {
		return nil, err
	}
	return s.commentRepo.CreateComment(ctx, newComment)
}

// Delete soft-deletes a comment after checking thread, comment and ownership, in that order.
func (s *service) Delete(ctx context.Context, callerID, threadID, commentID string) error {
	exists, err := s.threadRepo.IsThreadExist(ctx, threadID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrDeleteCommentThreadNotFound
	}

	c, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrDeleteCommentCommentNotFound
	}
	if c.Owner != callerID {
		return domain.ErrDeleteCommentNotOwner
	}

	return s.commentRepo.DeleteCommentByID(ctx, commentID, callerID)
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
	}
}
