package thread_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
)

type repos struct {
	thread  *mocks.ThreadRepository
	comment *mocks.CommentRepository
	reply   *mocks.ReplyRepository
	like    *mocks.LikeRepository
}

func newRepos() repos {
	return repos{
		thread:  new(mocks.ThreadRepository),
		comment: new(mocks.CommentRepository),
		reply:   new(mocks.ReplyRepository),
		like:    new(mocks.LikeRepository),
	}
}

func (r repos) service() *thread.Service {
	return thread.NewService(r.thread, r.comment, r.reply, r.like, 4)
}

func TestCreate(t *testing.T) {
	t.Run("success, owner comes from caller", func(t *testing.T) {
		r := newRepos()
		title, body := faker.Sentence(), faker.Paragraph()
		expected := &domain.CreatedThread{ID: "thread-123", Title: title, Owner: "user-123"}

		r.thread.On("CreateThread", mock.Anything, &domain.CreateThread{Title: title, Body: body, Owner: "user-123"}).
			Return(expected, nil).Once()

		res, err := r.service().Create(context.TODO(), "user-123", domain.Payload{
			"title": title,
			"body":  body,
			"owner": "user-evil",
		})

		require.NoError(t, err)
		assert.Equal(t, expected, res)
		r.thread.AssertExpectations(t)
	})

	t.Run("invalid payload never reaches the repository", func(t *testing.T) {
		r := newRepos()

		_, err := r.service().Create(context.TODO(), "user-123", domain.Payload{"title": "only a title"})

		assert.ErrorIs(t, err, domain.ErrCreateThreadMissingProperty)
		r.thread.AssertNotCalled(t, "CreateThread", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		r := newRepos()
		r.thread.On("CreateThread", mock.Anything, mock.Anything).Return(nil, errors.New("unexpected error")).Once()

		_, err := r.service().Create(context.TODO(), "user-123", domain.Payload{"title": "t", "body": "b"})
		assert.EqualError(t, err, "unexpected error")
	})
}

func TestGetDetail(t *testing.T) {
	now := time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC)
	deletedAt := now.Add(time.Hour)
	mockThread := &domain.Thread{
		ID:        "thread-123",
		Title:     "sebuah thread",
		Body:      "sebuah body thread",
		Owner:     "user-123",
		Username:  "dicoding",
		CreatedAt: now,
	}

	t.Run("thread not found", func(t *testing.T) {
		r := newRepos()
		r.thread.On("GetThreadByID", mock.Anything, "thread-404").Return(nil, nil).Once()

		_, err := r.service().GetDetail(context.TODO(), "thread-404")

		assert.ErrorIs(t, err, domain.ErrGetThreadDetailThreadNotFound)
		r.comment.AssertNotCalled(t, "GetCommentsByThreadID", mock.Anything, mock.Anything)
	})

	t.Run("assembles comments, replies and likes in order with masking", func(t *testing.T) {
		r := newRepos()
		comments := []domain.Comment{
			{ID: "comment-1", ThreadID: "thread-123", Content: "first comment", Owner: "user-123", Username: "dicoding", CreatedAt: now},
			{ID: "comment-2", ThreadID: "thread-123", Content: "second comment", Owner: "user-456", Username: "johndoe", CreatedAt: now.Add(time.Minute), DeletedAt: &deletedAt, DeletedBy: "user-456"},
		}
		r.thread.On("GetThreadByID", mock.Anything, "thread-123").Return(mockThread, nil).Once()
		r.comment.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return(comments, nil).Once()

		// the first comment answers last to make sure fan-out does not reorder the output
		r.reply.On("GetRepliesByCommentID", mock.Anything, "comment-1").
			After(30*time.Millisecond).
			Return([]domain.Reply{
				{ID: "reply-1", CommentID: "comment-1", Content: "live reply", Username: "johndoe", CreatedAt: now.Add(2 * time.Minute)},
				{ID: "reply-2", CommentID: "comment-1", Content: "gone reply", Username: "dicoding", CreatedAt: now.Add(3 * time.Minute), DeletedAt: &deletedAt},
			}, nil).Once()
		r.reply.On("GetRepliesByCommentID", mock.Anything, "comment-2").Return([]domain.Reply{}, nil).Once()
		r.like.On("CountLikeByCommentID", mock.Anything, "comment-1").After(10*time.Millisecond).Return(int64(2), nil).Once()
		r.like.On("CountLikeByCommentID", mock.Anything, "comment-2").Return(int64(0), nil).Once()

		res, err := r.service().GetDetail(context.TODO(), "thread-123")
		require.NoError(t, err)

		assert.Equal(t, *mockThread, res.Thread)
		require.Len(t, res.Comments, 2)

		first := res.Comments[0]
		assert.Equal(t, "comment-1", first.ID)
		assert.Equal(t, "first comment", first.Content)
		assert.False(t, first.IsDeleted)
		assert.Equal(t, int64(2), first.LikeCount)
		require.Len(t, first.Replies, 2)
		assert.Equal(t, "reply-1", first.Replies[0].ID)
		assert.Equal(t, "live reply", first.Replies[0].Content)
		assert.Equal(t, "reply-2", first.Replies[1].ID)
		assert.Equal(t, domain.DeletedReplyContent, first.Replies[1].Content)
		assert.True(t, first.Replies[1].IsDeleted)

		second := res.Comments[1]
		assert.Equal(t, "comment-2", second.ID)
		assert.Equal(t, domain.DeletedCommentContent, second.Content)
		assert.True(t, second.IsDeleted)
		assert.Empty(t, second.Replies)
		assert.Equal(t, int64(0), second.LikeCount)

		// stored records are left untouched
		assert.Equal(t, "second comment", comments[1].Content)

		r.thread.AssertExpectations(t)
		r.comment.AssertExpectations(t)
		r.reply.AssertExpectations(t)
		r.like.AssertExpectations(t)
	})

	t.Run("thread without comments", func(t *testing.T) {
		r := newRepos()
		r.thread.On("GetThreadByID", mock.Anything, "thread-123").Return(mockThread, nil).Once()
		r.comment.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return([]domain.Comment{}, nil).Once()

		res, err := r.service().GetDetail(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.NotNil(t, res.Comments)
		assert.Empty(t, res.Comments)
	})

	t.Run("failed sub-fetch fails the whole detail", func(t *testing.T) {
		r := newRepos()
		r.thread.On("GetThreadByID", mock.Anything, "thread-123").Return(mockThread, nil).Once()
		r.comment.On("GetCommentsByThreadID", mock.Anything, "thread-123").
			Return([]domain.Comment{{ID: "comment-1", Content: "c", CreatedAt: now}}, nil).Once()
		r.reply.On("GetRepliesByCommentID", mock.Anything, "comment-1").Return([]domain.Reply{}, nil).Maybe()
		r.like.On("CountLikeByCommentID", mock.Anything, "comment-1").Return(int64(0), errors.New("db down")).Once()

		res, err := r.service().GetDetail(context.TODO(), "thread-123")

		assert.Nil(t, res)
		assert.EqualError(t, err, "db down")
	})
}
