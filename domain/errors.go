package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller may not touch the requested item
	ErrForbidden = errors.New("you are not allowed to access this item")
	// ErrMethodNotImplemented will throw if a repository has no concrete backing
	ErrMethodNotImplemented = errors.New("method not implemented")
	// ErrCacheMiss will throw if the cache has no entry for the key
	ErrCacheMiss = errors.New("cache miss")
)

// Code is a stable error identifier of the form "<USE_CASE>.<REASON>".
// Use-cases and entities return codes; Translate turns them into ClientErrors.
type Code string

func (c Code) Error() string {
	return string(c)
}

// Entity validation
const (
	ErrCreateThreadMissingProperty  Code = "CREATE_THREAD.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrCreateThreadInvalidType      Code = "CREATE_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION"
	ErrCreateCommentMissingProperty Code = "CREATE_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrCreateCommentInvalidType     Code = "CREATE_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION"
	ErrCreateReplyMissingProperty   Code = "CREATE_REPLY.NOT_CONTAIN_NEEDED_PROPERTY"
	ErrCreateReplyInvalidType       Code = "CREATE_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// Request decoding
const (
	ErrRequestInvalidJSON Code = "REQUEST.NOT_VALID_JSON_OBJECT"
)

// Use-case preconditions
const (
	ErrCreateCommentThreadNotFound Code = "CREATE_COMMENT_USE_CASE.THREAD_NOT_FOUND"

	ErrDeleteCommentThreadNotFound  Code = "DELETE_COMMENT_USE_CASE.THREAD_NOT_FOUND"
	ErrDeleteCommentCommentNotFound Code = "DELETE_COMMENT_USE_CASE.COMMENT_NOT_FOUND"
	ErrDeleteCommentNotOwner        Code = "DELETE_COMMENT_USE_CASE.CANNOT_DELETE_OTHER_USER_COMMENT"

	ErrGetThreadDetailThreadNotFound Code = "GET_DETAIL_THREAD_USE_CASE.THREAD_NOT_FOUND"

	ErrCreateReplyThreadNotFound  Code = "CREATE_REPLY_USE_CASE.THREAD_NOT_FOUND"
	ErrCreateReplyCommentNotFound Code = "CREATE_REPLY_USE_CASE.COMMENT_NOT_FOUND"

	ErrDeleteReplyThreadNotFound  Code = "DELETE_REPLY_USE_CASE.THREAD_NOT_FOUND"
	ErrDeleteReplyCommentNotFound Code = "DELETE_REPLY_USE_CASE.COMMENT_NOT_FOUND"
	ErrDeleteReplyReplyNotFound   Code = "DELETE_REPLY_USE_CASE.REPLY_NOT_FOUND"
	ErrDeleteReplyNotOwner        Code = "DELETE_REPLY_USE_CASE.CANNOT_DELETE_OTHER_USER_REPLY"

	ErrLikeUnlikeThreadNotFound  Code = "LIKE_UNLIKE_USE_CASE.THREAD_NOT_FOUND"
	ErrLikeUnlikeCommentNotFound Code = "LIKE_UNLIKE_USE_CASE.COMMENT_NOT_FOUND"
)

// Repository contract checks
const (
	ErrThreadRepositoryNotImplemented  Code = "THREAD_REPOSITORY.METHOD_NOT_IMPLEMENTED"
	ErrCommentRepositoryNotImplemented Code = "COMMENT_REPOSITORY.METHOD_NOT_IMPLEMENTED"
	ErrReplyRepositoryNotImplemented   Code = "REPLY_REPOSITORY.METHOD_NOT_IMPLEMENTED"
	ErrLikeRepositoryNotImplemented    Code = "LIKE_REPOSITORY.METHOD_NOT_IMPLEMENTED"
)
