package domain

import "context"

// UnimplementedThreadRepository can be embedded in partial ThreadRepository
// implementations. Every method it provides fails with ErrThreadRepositoryNotImplemented.
type UnimplementedThreadRepository struct{}

func (UnimplementedThreadRepository) CreateThread(context.Context, *CreateThread) (*CreatedThread, error) {
	return nil, ErrThreadRepositoryNotImplemented
}

func (UnimplementedThreadRepository) IsThreadExist(context.Context, string) (bool, error) {
	return false, ErrThreadRepositoryNotImplemented
}

func (UnimplementedThreadRepository) GetThreadByID(context.Context, string) (*Thread, error) {
	return nil, ErrThreadRepositoryNotImplemented
}

// UnimplementedCommentRepository fails every method with ErrCommentRepositoryNotImplemented.
type UnimplementedCommentRepository struct{}

func (UnimplementedCommentRepository) CreateComment(context.Context, *CreateComment) (*CreatedComment, error) {
	return nil, ErrCommentRepositoryNotImplemented
}

func (UnimplementedCommentRepository) GetCommentByID(context.Context, string) (*Comment, error) {
	return nil, ErrCommentRepositoryNotImplemented
}

func (UnimplementedCommentRepository) GetCommentsByThreadID(context.Context, string) ([]Comment, error) {
	return nil, ErrCommentRepositoryNotImplemented
}

func (UnimplementedCommentRepository) DeleteCommentByID(context.Context, string, string) error {
	return ErrCommentRepositoryNotImplemented
}

// UnimplementedReplyRepository fails every method with ErrReplyRepositoryNotImplemented.
type UnimplementedReplyRepository struct{}

func (UnimplementedReplyRepository) CreateReply(context.Context, *CreateReply) (*CreatedReply, error) {
	return nil, ErrReplyRepositoryNotImplemented
}

func (UnimplementedReplyRepository) GetReplyByID(context.Context, string) (*Reply, error) {
	return nil, ErrReplyRepositoryNotImplemented
}

func (UnimplementedReplyRepository) GetRepliesByCommentID(context.Context, string) ([]Reply, error) {
	return nil, ErrReplyRepositoryNotImplemented
}

func (UnimplementedReplyRepository) DeleteReplyByID(context.Context, string, string) error {
	return ErrReplyRepositoryNotImplemented
}

// UnimplementedLikeRepository fails every method with ErrLikeRepositoryNotImplemented.
type UnimplementedLikeRepository struct{}

func (UnimplementedLikeRepository) GetLikeByCommentAndUser(context.Context, string, string) (*Like, error) {
	return nil, ErrLikeRepositoryNotImplemented
}

func (UnimplementedLikeRepository) CreateLike(context.Context, string, string) (string, error) {
	return "", ErrLikeRepositoryNotImplemented
}

func (UnimplementedLikeRepository) DeleteLike(context.Context, string, string) (string, error) {
	return "", ErrLikeRepositoryNotImplemented
}

func (UnimplementedLikeRepository) CountLikeByCommentID(context.Context, string) (int64, error) {
	return 0, ErrLikeRepositoryNotImplemented
}

var (
	_ ThreadRepository  = UnimplementedThreadRepository{}
	_ CommentRepository = UnimplementedCommentRepository{}
	_ ReplyRepository   = UnimplementedReplyRepository{}
	_ LikeRepository    = UnimplementedLikeRepository{}
)
