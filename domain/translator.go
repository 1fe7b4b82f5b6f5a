package domain

import "errors"

// ErrorKind is the user-facing category of a translated error.
type ErrorKind uint8

const (
	KindInvariant ErrorKind = iota + 1
	KindNotFound
	KindAuthorization
	KindMethodNotImplemented
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvariant:
		return "INVARIANT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindAuthorization:
		return "AUTHORIZATION"
	case KindMethodNotImplemented:
		return "METHOD_NOT_IMPLEMENTED"
	default:
		return "UNKNOWN"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvariant:
		return ErrBadParamInput
	case KindNotFound:
		return ErrNotFound
	case KindAuthorization:
		return ErrForbidden
	case KindMethodNotImplemented:
		return ErrMethodNotImplemented
	default:
		return ErrInternalServerError
	}
}

// ClientError is a categorized, human-readable error produced by Translate.
type ClientError struct {
	Kind    ErrorKind
	Code    Code
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

// Unwrap exposes both the originating code and the kind sentinel, so
// errors.Is(err, ErrNotFound) and errors.Is(err, ErrDeleteCommentNotOwner) both hold.
func (e *ClientError) Unwrap() []error {
	return []error{e.Code, e.Kind.sentinel()}
}

type translation struct {
	kind    ErrorKind
	message string
}

var translations = map[Code]translation{
	ErrRequestInvalidJSON: {KindInvariant, "tidak dapat memproses permintaan karena body bukan objek JSON yang valid"},

	ErrCreateThreadMissingProperty:  {KindInvariant, "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada"},
	ErrCreateThreadInvalidType:      {KindInvariant, "tidak dapat membuat thread baru karena tipe data tidak sesuai"},
	ErrCreateCommentThreadNotFound:  {KindNotFound, "tidak dapat membuat komentar baru karena thread tidak ditemukan"},
	ErrCreateCommentMissingProperty: {KindInvariant, "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada"},
	ErrCreateCommentInvalidType:     {KindInvariant, "tidak dapat membuat komentar baru karena tipe data tidak sesuai"},

	ErrDeleteCommentThreadNotFound:  {KindNotFound, "tidak dapat menghapus komentar karena thread tidak ditemukan"},
	ErrDeleteCommentCommentNotFound: {KindNotFound, "tidak dapat menghapus komentar karena komentar tidak ditemukan"},
	ErrDeleteCommentNotOwner:        {KindAuthorization, "tidak dapat menghapus komentar karena kamu bukan pemilik komentar"},

	ErrGetThreadDetailThreadNotFound: {KindNotFound, "thread tidak ditemukan"},

	ErrCreateReplyThreadNotFound:  {KindNotFound, "tidak dapat membuat balasan karena thread tidak ditemukan"},
	ErrCreateReplyCommentNotFound: {KindNotFound, "tidak dapat membuat balasan karena komentar tidak ditemukan"},
	ErrCreateReplyMissingProperty: {KindInvariant, "tidak dapat membuat balasan karena properti yang dibutuhkan tidak ada"},
	ErrCreateReplyInvalidType:     {KindInvariant, "tidak dapat membuat balasan karena tipe data tidak sesuai"},

	ErrDeleteReplyThreadNotFound:  {KindNotFound, "tidak dapat menghapus balasan karena thread tidak ditemukan"},
	ErrDeleteReplyCommentNotFound: {KindNotFound, "tidak dapat menghapus balasan karena komentar tidak ditemukan"},
	ErrDeleteReplyReplyNotFound:   {KindNotFound, "tidak dapat menghapus balasan karena balasan tidak ditemukan"},
	ErrDeleteReplyNotOwner:        {KindAuthorization, "tidak dapat menghapus balasan karena kamu bukan pemilik balasan"},

	ErrLikeUnlikeThreadNotFound:  {KindNotFound, "tidak dapat memberikan like pada komentar karena thread tidak ditemukan"},
	ErrLikeUnlikeCommentNotFound: {KindNotFound, "tidak dapat memberikan like pada komentar karena komentar tidak ditemukan"},

	ErrThreadRepositoryNotImplemented:  {KindMethodNotImplemented, "THREAD_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
	ErrCommentRepositoryNotImplemented: {KindMethodNotImplemented, "COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
	ErrReplyRepositoryNotImplemented:   {KindMethodNotImplemented, "REPLY_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
	ErrLikeRepositoryNotImplemented:    {KindMethodNotImplemented, "LIKE_REPOSITORY.METHOD_NOT_IMPLEMENTED"},
}

// Translate maps a Code anywhere in err's chain to its ClientError.
// Errors without a known code are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce
	}
	var code Code
	if !errors.As(err, &code) {
		return err
	}
	t, ok := translations[code]
	if !ok {
		return err
	}
	return &ClientError{
		Kind:    t.kind,
		Code:    code,
		Message: t.message,
	}
}
