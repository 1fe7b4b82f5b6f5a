package domain

import "context"

// LikeState is the state of a (comment, user) pair.
type LikeState int8

const (
	NotLiked LikeState = iota
	Liked
)

func (s LikeState) String() string {
	switch s {
	case Liked:
		return "LIKED"
	case NotLiked:
		return "NOT_LIKED"
	default:
		return "UNKNOWN"
	}
}

// Like is representing a like record. Its existence means "liked".
type Like struct {
	ID        string
	CommentID string
	UserID    string
}

// LikeRepository defines the contract for like data persistence.
type LikeRepository interface {
	// GetLikeByCommentAndUser returns nil with a nil error if the user has not liked the comment.
	GetLikeByCommentAndUser(ctx context.Context, commentID, userID string) (*Like, error)

	// CreateLike stores a like and returns its ID.
	// Returns ErrConflict if the pair is already liked.
	CreateLike(ctx context.Context, commentID, userID string) (string, error)

	// DeleteLike removes a like and returns the removed ID.
	// Returns ErrNotFound if the pair is not liked.
	DeleteLike(ctx context.Context, commentID, userID string) (string, error)

	// CountLikeByCommentID counts likes on a comment across all users.
	CountLikeByCommentID(ctx context.Context, commentID string) (int64, error)
}

// LikeCache caches like counts per comment. Every like write bumps the
// comment's generation; a rebuilt count is stored only against the
// generation read before the count was loaded, so a rebuild that raced a
// write is dropped instead of cached.
type LikeCache interface {
	// GetLikeCount returns ErrCacheMiss when no count is cached.
	GetLikeCount(ctx context.Context, commentID string) (int64, error)
	// GetLikeCountGeneration returns the current generation, 0 if none was recorded.
	GetLikeCountGeneration(ctx context.Context, commentID string) (int64, error)
	// SetLikeCount stores count if generation is still current and reports whether it did.
	SetLikeCount(ctx context.Context, commentID string, count, generation int64) (bool, error)
	// InvalidateLikeCount bumps the generation and drops the cached count.
	InvalidateLikeCount(ctx context.Context, commentID string) error
}

type LikeUsecase interface {
	// Toggle likes the comment if the caller has not liked it yet, otherwise unlikes it.
	Toggle(ctx context.Context, callerID, threadID, commentID string) (LikeState, error)
}
