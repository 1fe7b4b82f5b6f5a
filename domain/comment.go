package domain

import (
	"context"
	"time"
)

// DeletedCommentContent replaces the content of a soft-deleted comment in thread detail.
const DeletedCommentContent = "**komentar telah dihapus**"

// CreateComment is a validated request to comment on a thread.
type CreateComment struct {
	ThreadID string
	Content  string
	Owner    string
}

// NewCreateComment validates p and builds a CreateComment.
// Required keys: content, owner, threadId.
func NewCreateComment(p Payload) (*CreateComment, error) {
	fields, err := p.verifyStrings(ErrCreateCommentMissingProperty, ErrCreateCommentInvalidType,
		"content", "owner", "threadId")
	if err != nil {
		return nil, err
	}
	return &CreateComment{
		ThreadID: fields["threadId"],
		Content:  fields["content"],
		Owner:    fields["owner"],
	}, nil
}

// CreatedComment is the projection returned after a comment is stored.
type CreatedComment struct {
	ID      string
	Content string
	Owner   string
}

// Comment domain model
type Comment struct {
	ID        string
	ThreadID  string
	Content   string // stored content, never erased by deletion
	Owner     string
	Username  string
	CreatedAt time.Time
	DeletedAt *time.Time // nil while the comment is live
	DeletedBy string
}

// IsDeleted reports whether the comment has been soft-deleted.
func (c *Comment) IsDeleted() bool {
	return c.DeletedAt != nil
}

// CommentDetail is a comment as shown inside ThreadDetail.
type CommentDetail struct {
	ID        string
	Username  string
	Date      time.Time
	Content   string // masked when IsDeleted
	IsDeleted bool
	Replies   []ReplyDetail
	LikeCount int64
}

// NewCommentDetail builds the view of c. Replies and LikeCount are derived
// separately and passed in; c itself is not modified.
func NewCommentDetail(c Comment, replies []ReplyDetail, likeCount int64) CommentDetail {
	content := c.Content
	if c.IsDeleted() {
		content = DeletedCommentContent
	}
	if replies == nil {
		replies = []ReplyDetail{}
	}
	return CommentDetail{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.CreatedAt,
		Content:   content,
		IsDeleted: c.IsDeleted(),
		Replies:   replies,
		LikeCount: likeCount,
	}
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	CreateComment(ctx context.Context, c *CreateComment) (*CreatedComment, error)
	// GetCommentByID returns nil with a nil error if the comment doesn't exist.
	GetCommentByID(ctx context.Context, commentID string) (*Comment, error)
	// GetCommentsByThreadID returns the thread's comments, oldest first.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]Comment, error)
	// DeleteCommentByID soft-deletes a comment, recording when and by whom.
	DeleteCommentByID(ctx context.Context, commentID string, actingUserID string) error
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, callerID, threadID string, p Payload) (*CreatedComment, error)
	Delete(ctx context.Context, callerID, threadID, commentID string) error
}
