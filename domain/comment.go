package domain

import (
	"context"
	"time"
)

// DeletedCommentContent replaces the body of a soft-deleted comment
const DeletedCommentContent = "**komentar telah dihapus**"

// AddComment domain model
type AddComment struct {
	Content string
}

func NewAddComment(p Payload) (AddComment, error) {
	content, err := p.stringField("AddComment", "content")
	if err != nil {
		return AddComment{}, err
	}
	return AddComment{Content: content}, nil
}

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(id, content, owner string) (AddedComment, error) {
	err := requireStrings("AddedComment", map[string]string{"id": id, "content": content, "owner": owner})
	if err != nil {
		return AddedComment{}, err
	}
	return AddedComment{ID: id, Content: content, Owner: owner}, nil
}

// CommentRecord is a comment row joined with its author
type CommentRecord struct {
	ID       string
	ThreadID string
	Username string
	Content  string
	Date     time.Time
	IsDelete bool
}

// DetailComment is a comment inside a DetailThread
type DetailComment struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
	Replies   []DetailReply `json:"replies"`
}

// NewDetailComment validates a comment view. A zero likeCount is valid, a negative one is
// a type mismatch; replies may be empty but not nil.
func NewDetailComment(id, username, content, date string, likeCount int, replies []DetailReply) (DetailComment, error) {
	err := requireStrings("DetailComment", map[string]string{
		"id": id, "username": username, "content": content, "date": date,
	})
	if err != nil {
		return DetailComment{}, err
	}
	if replies == nil {
		return DetailComment{}, &ValidationError{Entity: "DetailComment", Field: "replies", Err: ErrMissingRequiredProperty}
	}
	if likeCount < 0 {
		return DetailComment{}, &ValidationError{Entity: "DetailComment", Field: "likeCount", Err: ErrTypeMismatch}
	}
	return DetailComment{
		ID:        id,
		Username:  username,
		Date:      date,
		Content:   content,
		LikeCount: likeCount,
		Replies:   replies,
	}, nil
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	AddComment(ctx context.Context, payload Payload, ownerID, threadID string) (AddedComment, error)
	DeleteComment(ctx context.Context, commentID, ownerID string) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	AddComment(ctx context.Context, c AddComment, ownerID, threadID string) (AddedComment, error)
	// VerifyCommentAvailability returns ErrNotFound if the comment is absent or soft-deleted.
	VerifyCommentAvailability(ctx context.Context, id string) error
	// VerifyCommentOwner returns ErrForbidden if userID does not own the comment.
	VerifyCommentOwner(ctx context.Context, id, userID string) error
	// DeleteCommentByID sets the soft-delete flag.
	DeleteCommentByID(ctx context.Context, id string) error
	// GetCommentsByThreadID lists comments oldest first, deleted ones included.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentRecord, error)
}
