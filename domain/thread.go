package domain

import (
	"context"
	"time"
)

// CreateThread is a validated request to open a new thread.
type CreateThread struct {
	Title string
	Body  string
	Owner string
}

// NewCreateThread validates p and builds a CreateThread.
// Required keys: title, body, owner.
func NewCreateThread(p Payload) (*CreateThread, error) {
	fields, err := p.verifyStrings(ErrCreateThreadMissingProperty, ErrCreateThreadInvalidType,
		"title", "body", "owner")
	if err != nil {
		return nil, err
	}
	return &CreateThread{
		Title: fields["title"],
		Body:  fields["body"],
		Owner: fields["owner"],
	}, nil
}

// CreatedThread is the projection returned after a thread is stored.
type CreatedThread struct {
	ID    string
	Title string
	Owner string
}

// Thread is a stored thread.
type Thread struct {
	ID        string    // Unique identifier, e.g. "thread-<uuid>"
	Title     string    // Thread title
	Body      string    // Thread body content
	Owner     string    // ID of the user who opened the thread
	Username  string    // Display name of the owner
	CreatedAt time.Time // Creation timestamp
}

// ThreadDetail is the read model of a thread with its comments, replies and like counts.
type ThreadDetail struct {
	Thread
	Comments []CommentDetail
}

// ThreadRepository defines the contract for thread data persistence
type ThreadRepository interface {
	// CreateThread stores a new thread owned by t.Owner.
	CreateThread(ctx context.Context, t *CreateThread) (*CreatedThread, error)

	// IsThreadExist reports whether a thread with the given ID exists.
	IsThreadExist(ctx context.Context, threadID string) (bool, error)

	// GetThreadByID retrieves a thread by its ID.
	// Returns nil with a nil error if the thread doesn't exist.
	GetThreadByID(ctx context.Context, threadID string) (*Thread, error)
}

// ThreadDBRepository is the database side of ThreadRepository.
type ThreadDBRepository interface {
	ThreadRepository

	// FetchIDs returns up to limit thread IDs greater than cursor, ordered by ID.
	FetchIDs(ctx context.Context, cursor string, limit int64) ([]string, error)
}

// ThreadCache caches threads with a logical expiry: an expired entry is still
// served while it is rebuilt in the background.
type ThreadCache interface {
	// GetThreadWithLogicalExpire returns ErrCacheMiss when the thread is not cached.
	GetThreadWithLogicalExpire(ctx context.Context, threadID string) (t *Thread, expired bool, err error)
	SetThreadWithLogicalExpire(ctx context.Context, t *Thread, ttl time.Duration) error
}

type ThreadUsecase interface {
	Create(ctx context.Context, callerID string, p Payload) (*CreatedThread, error)
	GetDetail(ctx context.Context, threadID string) (*ThreadDetail, error)
}
