package thread

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// DefaultFanOutLimit bounds the concurrent sub-fetches of GetDetail.
const DefaultFanOutLimit = 16

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.LikeRepository
	fanOut      int
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, l domain.LikeRepository, fanOut int) *Service {
	if fanOut <= 0 {
		fanOut = DefaultFanOutLimit
	}
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
		fanOut:      fanOut,
	}
}

func (s *Service) Create(ctx context.Context, callerID string, p domain.Payload) (*domain.CreatedThread, error) {
	newThread, err := domain.NewCreateThread(p.With("owner", callerID))
	if err != nil {
		return nil, err
	}
	return s.threadRepo.CreateThread(ctx, newThread)
}

/*
* GetDetail fans out per comment with errgroup: one goroutine fetches the
* replies, another the like count. Every goroutine writes only its own slot
* of replies/likes, so the comment order from the repository is kept as is.
 */
func (s *Service) GetDetail(ctx context.Context, threadID string) (*domain.ThreadDetail, error) {
	thread, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, domain.ErrGetThreadDetailThreadNotFound
	}

	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	replies := make([][]domain.Reply, len(comments))
	likes := make([]int64, len(comments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanOut)
	for i := range comments {
		commentID := comments[i].ID
		g.Go(func() error {
			res, err := s.replyRepo.GetRepliesByCommentID(gctx, commentID)
			if err != nil {
				return err
			}
			replies[i] = res
			return nil
		})
		g.Go(func() error {
			count, err := s.likeRepo.CountLikeByCommentID(gctx, commentID)
			if err != nil {
				return err
			}
			likes[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logrus.Errorf("failed to assemble detail of thread %s: %v", threadID, err)
		return nil, err
	}

	details := make([]domain.CommentDetail, len(comments))
	for i, c := range comments {
		replyDetails := make([]domain.ReplyDetail, len(replies[i]))
		for j, r := range replies[i] {
			replyDetails[j] = domain.NewReplyDetail(r)
		}
		details[i] = domain.NewCommentDetail(c, replyDetails, likes[i])
	}

	return &domain.ThreadDetail{
		Thread:   *thread,
		Comments: details,
	}, nil
}
