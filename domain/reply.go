package domain

import (
	"context"
	"time"
)

// DeletedReplyContent replaces the content of a soft-deleted reply in thread detail.
const DeletedReplyContent = "**balasan telah dihapus**"

// CreateReply is a validated request to reply to a comment.
type CreateReply struct {
	ThreadID  string
	CommentID string
	Content   string
	Owner     string
}

// NewCreateReply validates p and builds a CreateReply.
// Required keys: content, owner, threadId, commentId.
func NewCreateReply(p Payload) (*CreateReply, error) {
	fields, err := p.verifyStrings(ErrCreateReplyMissingProperty, ErrCreateReplyInvalidType,
		"content", "owner", "threadId", "commentId")
	if err != nil {
		return nil, err
	}
	return &CreateReply{
		ThreadID:  fields["threadId"],
		CommentID: fields["commentId"],
		Content:   fields["content"],
		Owner:     fields["owner"],
	}, nil
}

// CreatedReply is the projection returned after a reply is stored.
type CreatedReply struct {
	ID      string
	Content string
	Owner   string
}

// Reply is a stored reply to a comment.
type Reply struct {
	ID        string
	ThreadID  string
	CommentID string
	Content   string
	Owner     string
	Username  string
	CreatedAt time.Time
	DeletedAt *time.Time
	DeletedBy string
}

func (r *Reply) IsDeleted() bool {
	return r.DeletedAt != nil
}

// ReplyDetail is a reply as shown inside CommentDetail.
type ReplyDetail struct {
	ID        string
	Username  string
	Date      time.Time
	Content   string
	IsDeleted bool
}

func NewReplyDetail(r Reply) ReplyDetail {
	content := r.Content
	if r.IsDeleted() {
		content = DeletedReplyContent
	}
	return ReplyDetail{
		ID:        r.ID,
		Username:  r.Username,
		Date:      r.CreatedAt,
		Content:   content,
		IsDeleted: r.IsDeleted(),
	}
}

type ReplyRepository interface {
	CreateReply(ctx context.Context, r *CreateReply) (*CreatedReply, error)
	// GetReplyByID returns nil with a nil error if the reply doesn't exist.
	GetReplyByID(ctx context.Context, replyID string) (*Reply, error)
	// GetRepliesByCommentID returns the comment's replies, oldest first.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]Reply, error)
	DeleteReplyByID(ctx context.Context, replyID string, actingUserID string) error
}

type ReplyUsecase interface {
	Create(ctx context.Context, callerID, threadID, commentID string, p Payload) (*CreatedReply, error)
	Delete(ctx context.Context, callerID, threadID, commentID, replyID string) error
}
