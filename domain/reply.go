package domain

import (
	"context"
	"time"
)

// DeletedReplyContent replaces the body of a soft-deleted reply
const DeletedReplyContent = "**balasan telah dihapus**"

type AddReply struct {
	Content string
}

func NewAddReply(p Payload) (AddReply, error) {
	content, err := p.stringField("AddReply", "content")
	if err != nil {
		return AddReply{}, err
	}
	return AddReply{Content: content}, nil
}

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(id, content, owner string) (AddedReply, error) {
	err := requireStrings("AddedReply", map[string]string{"id": id, "content": content, "owner": owner})
	if err != nil {
		return AddedReply{}, err
	}
	return AddedReply{ID: id, Content: content, Owner: owner}, nil
}

// ReplyRecord is a reply row joined with its author. CommentID is the parent comment.
type ReplyRecord struct {
	ID        string
	CommentID string
	Username  string
	Content   string
	Date      time.Time
	IsDelete  bool
}

type DetailReply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

func NewDetailReply(id, content, date, username string) (DetailReply, error) {
	err := requireStrings("DetailReply", map[string]string{
		"id": id, "content": content, "date": date, "username": username,
	})
	if err != nil {
		return DetailReply{}, err
	}
	return DetailReply{ID: id, Content: content, Date: date, Username: username}, nil
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, payload Payload, ownerID, threadID, commentID string) (AddedReply, error)
	DeleteReply(ctx context.Context, replyID, ownerID string) error
}

// ReplyRepository mirrors CommentRepository with a parent comment instead of a thread
type ReplyRepository interface {
	AddReply(ctx context.Context, r AddReply, ownerID, commentID string) (AddedReply, error)
	VerifyReplyAvailability(ctx context.Context, id string) error
	VerifyReplyOwner(ctx context.Context, id, userID string) error
	DeleteReplyByID(ctx context.Context, id string) error
	// GetRepliesByCommentID lists replies of one comment oldest first.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReplyRecord, error)
}
