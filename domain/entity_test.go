package domain_test

import (
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

func TestNewCreateThread(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := domain.NewCreateThread(domain.Payload{"title": "a thread", "owner": "user-123"})
		assert.ErrorIs(t, err, domain.ErrCreateThreadMissingProperty)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		_, err := domain.NewCreateThread(domain.Payload{"title": "", "body": "b", "owner": "user-123"})
		assert.ErrorIs(t, err, domain.ErrCreateThreadMissingProperty)
	})

	t.Run("missing is reported before wrong type", func(t *testing.T) {
		_, err := domain.NewCreateThread(domain.Payload{"title": 123, "owner": "user-123"})
		assert.ErrorIs(t, err, domain.ErrCreateThreadMissingProperty)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := domain.NewCreateThread(domain.Payload{"title": 123, "body": true, "owner": "user-123"})
		assert.ErrorIs(t, err, domain.ErrCreateThreadInvalidType)
	})

	t.Run("success", func(t *testing.T) {
		p := domain.Payload{"title": faker.Sentence(), "body": faker.Paragraph(), "owner": "user-123"}
		res, err := domain.NewCreateThread(p)
		require.NoError(t, err)
		assert.Equal(t, p["title"], res.Title)
		assert.Equal(t, p["body"], res.Body)
		assert.Equal(t, "user-123", res.Owner)
	})
}

func TestNewCreateComment(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := domain.NewCreateComment(domain.Payload{"owner": "user-123"})
		assert.ErrorIs(t, err, domain.ErrCreateCommentMissingProperty)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := domain.NewCreateComment(domain.Payload{"threadId": 123, "content": "comment", "owner": "user-123"})
		assert.ErrorIs(t, err, domain.ErrCreateCommentInvalidType)
	})

	t.Run("success", func(t *testing.T) {
		content := faker.Sentence()
		res, err := domain.NewCreateComment(domain.Payload{"threadId": "thread-123", "content": content, "owner": "user-123"})
		require.NoError(t, err)
		assert.Equal(t, &domain.CreateComment{ThreadID: "thread-123", Content: content, Owner: "user-123"}, res)
	})
}

func TestNewCreateReply(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		_, err := domain.NewCreateReply(domain.Payload{"content": "reply", "owner": "user-123", "threadId": "thread-123"})
		assert.ErrorIs(t, err, domain.ErrCreateReplyMissingProperty)
	})

	t.Run("nil counts as missing", func(t *testing.T) {
		_, err := domain.NewCreateReply(domain.Payload{"content": nil, "owner": "user-123", "threadId": "thread-123", "commentId": "comment-123"})
		assert.ErrorIs(t, err, domain.ErrCreateReplyMissingProperty)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := domain.NewCreateReply(domain.Payload{"content": []string{"reply"}, "owner": "user-123", "threadId": "thread-123", "commentId": "comment-123"})
		assert.ErrorIs(t, err, domain.ErrCreateReplyInvalidType)
	})

	t.Run("success", func(t *testing.T) {
		res, err := domain.NewCreateReply(domain.Payload{"content": "reply", "owner": "user-123", "threadId": "thread-123", "commentId": "comment-123"})
		require.NoError(t, err)
		assert.Equal(t, &domain.CreateReply{ThreadID: "thread-123", CommentID: "comment-123", Content: "reply", Owner: "user-123"}, res)
	})
}

func TestPayloadWith(t *testing.T) {
	p := domain.Payload{"content": "hi", "owner": "user-evil"}
	out := p.With("owner", "user-123")

	assert.Equal(t, "user-123", out["owner"])
	assert.Equal(t, "user-evil", p["owner"], "original payload must not change")
}

func TestNewCommentDetail(t *testing.T) {
	now := time.Now()
	live := domain.Comment{ID: "comment-1", Content: "first", Username: "dicoding", CreatedAt: now}
	deleted := domain.Comment{ID: "comment-2", Content: "second", Username: "johndoe", CreatedAt: now, DeletedAt: &now, DeletedBy: "user-1"}

	t.Run("live comment keeps content", func(t *testing.T) {
		view := domain.NewCommentDetail(live, nil, 0)
		assert.Equal(t, "first", view.Content)
		assert.False(t, view.IsDeleted)
		assert.NotNil(t, view.Replies)
		assert.Equal(t, int64(0), view.LikeCount)
	})

	t.Run("deleted comment is masked without touching the record", func(t *testing.T) {
		view := domain.NewCommentDetail(deleted, []domain.ReplyDetail{{ID: "reply-1"}}, 2)
		assert.Equal(t, domain.DeletedCommentContent, view.Content)
		assert.True(t, view.IsDeleted)
		assert.Equal(t, "second", deleted.Content)
		assert.Len(t, view.Replies, 1)
		assert.Equal(t, int64(2), view.LikeCount)
	})
}

func TestNewReplyDetail(t *testing.T) {
	now := time.Now()

	view := domain.NewReplyDetail(domain.Reply{ID: "reply-1", Content: "a reply", CreatedAt: now})
	assert.Equal(t, "a reply", view.Content)
	assert.False(t, view.IsDeleted)

	view = domain.NewReplyDetail(domain.Reply{ID: "reply-2", Content: "a reply", CreatedAt: now, DeletedAt: &now})
	assert.Equal(t, domain.DeletedReplyContent, view.Content)
	assert.True(t, view.IsDeleted)
	assert.Equal(t, now, view.Date)
}
