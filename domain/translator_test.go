package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		code    domain.Code
		kind    domain.ErrorKind
		message string
		is      error
	}{
		{domain.ErrRequestInvalidJSON, domain.KindInvariant, "tidak dapat memproses permintaan karena body bukan objek JSON yang valid", domain.ErrBadParamInput},
		{domain.ErrCreateThreadMissingProperty, domain.KindInvariant, "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada", domain.ErrBadParamInput},
		{domain.ErrCreateCommentInvalidType, domain.KindInvariant, "tidak dapat membuat komentar baru karena tipe data tidak sesuai", domain.ErrBadParamInput},
		{domain.ErrCreateCommentThreadNotFound, domain.KindNotFound, "tidak dapat membuat komentar baru karena thread tidak ditemukan", domain.ErrNotFound},
		{domain.ErrDeleteCommentNotOwner, domain.KindAuthorization, "tidak dapat menghapus komentar karena kamu bukan pemilik komentar", domain.ErrForbidden},
		{domain.ErrGetThreadDetailThreadNotFound, domain.KindNotFound, "thread tidak ditemukan", domain.ErrNotFound},
		{domain.ErrDeleteReplyNotOwner, domain.KindAuthorization, "tidak dapat menghapus balasan karena kamu bukan pemilik balasan", domain.ErrForbidden},
		{domain.ErrLikeUnlikeCommentNotFound, domain.KindNotFound, "tidak dapat memberikan like pada komentar karena komentar tidak ditemukan", domain.ErrNotFound},
		{domain.ErrLikeRepositoryNotImplemented, domain.KindMethodNotImplemented, "LIKE_REPOSITORY.METHOD_NOT_IMPLEMENTED", domain.ErrMethodNotImplemented},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := domain.Translate(tt.code)

			var ce *domain.ClientError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.kind, ce.Kind)
			assert.Equal(t, tt.message, ce.Error())
			assert.ErrorIs(t, err, tt.is)
			assert.ErrorIs(t, err, tt.code)
		})
	}
}

func TestTranslateWrappedCode(t *testing.T) {
	err := domain.Translate(fmt.Errorf("comment usecase: %w", domain.ErrDeleteCommentCommentNotFound))

	var ce *domain.ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, domain.KindNotFound, ce.Kind)
}

func TestTranslatePassThrough(t *testing.T) {
	original := errors.New("connection refused")
	assert.Same(t, original, domain.Translate(original))

	unknown := domain.Code("SOMETHING.UNKNOWN")
	assert.Equal(t, unknown, domain.Translate(unknown))

	assert.NoError(t, domain.Translate(nil))
}

func TestUnimplementedRepositories(t *testing.T) {
	ctx := context.Background()

	_, err := domain.UnimplementedThreadRepository{}.IsThreadExist(ctx, "thread-123")
	assert.ErrorIs(t, err, domain.ErrThreadRepositoryNotImplemented)

	err = domain.UnimplementedCommentRepository{}.DeleteCommentByID(ctx, "comment-123", "user-123")
	assert.ErrorIs(t, err, domain.ErrCommentRepositoryNotImplemented)

	_, err = domain.UnimplementedReplyRepository{}.GetRepliesByCommentID(ctx, "comment-123")
	assert.ErrorIs(t, err, domain.ErrReplyRepositoryNotImplemented)

	_, err = domain.UnimplementedLikeRepository{}.CountLikeByCommentID(ctx, "comment-123")
	assert.ErrorIs(t, err, domain.ErrLikeRepositoryNotImplemented)
	assert.ErrorIs(t, domain.Translate(err), domain.ErrMethodNotImplemented)
}
