package domain

import (
	"context"
	"time"
)

// LikeState is the (user, comment) like state the toggle flips
type LikeState int8

const (
	NotLiked LikeState = iota
	Liked
)

func (l LikeState) String() string {
	switch l {
	case Liked:
		return "LIKED"
	case NotLiked:
		return "NOT_LIKED"
	default:
		return "UNKNOWN"
	}
}

// Like is representing a like record, unique per (Owner, CommentID)
type Like struct {
	ID        string
	Owner     string
	CommentID string
	CreatedAt time.Time
}

type LikeRepository interface {
	// VerifyLikeAvailability reports whether userID currently likes the comment.
	VerifyLikeAvailability(ctx context.Context, userID, commentID string) (bool, error)

	// AddLike inserts a like and returns its id.
	// Returns ErrConflict if the pair already exists.
	AddLike(ctx context.Context, userID, commentID string) (string, error)

	// DeleteLike removes the like row of the pair.
	DeleteLike(ctx context.Context, userID, commentID string) error

	GetLikesByCommentID(ctx context.Context, commentID string) ([]Like, error)
}

type LikeUsecase interface {
	// ToggleLike flips the caller's like on a comment and returns the new state.
	ToggleLike(ctx context.Context, userID, threadID, commentID string) (LikeState, error)
}
