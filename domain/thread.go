package domain

import (
	"context"
	"time"
)

// AddThread is the validated body of a new thread
type AddThread struct {
	Title string
	Body  string
}

// NewAddThread builds an AddThread from a raw request payload.
func NewAddThread(p Payload) (AddThread, error) {
	v, err := p.stringFields("AddThread", "title", "body")
	if err != nil {
		return AddThread{}, err
	}
	return AddThread{Title: v[0], Body: v[1]}, nil
}

// AddedThread is what the store hands back after inserting a thread
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(id, title, owner string) (AddedThread, error) {
	err := requireStrings("AddedThread", map[string]string{"id": id, "title": title, "owner": owner})
	if err != nil {
		return AddedThread{}, err
	}
	return AddedThread{ID: id, Title: title, Owner: owner}, nil
}

// ThreadDetail is the thread row joined with its author, as read from the store
type ThreadDetail struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// DetailThread is the nested, masked thread view returned to clients
type DetailThread struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []DetailComment `json:"comments"`
}

// NewDetailThread validates a thread view. comments may be empty but not nil.
func NewDetailThread(id, title, body, date, username string, comments []DetailComment) (DetailThread, error) {
	err := requireStrings("DetailThread", map[string]string{
		"id": id, "title": title, "body": body, "date": date, "username": username,
	})
	if err != nil {
		return DetailThread{}, err
	}
	if comments == nil {
		return DetailThread{}, &ValidationError{Entity: "DetailThread", Field: "comments", Err: ErrMissingRequiredProperty}
	}
	return DetailThread{
		ID:       id,
		Title:    title,
		Body:     body,
		Date:     date,
		Username: username,
		Comments: comments,
	}, nil
}

// ThreadRepository defines the contract for thread persistence
type ThreadRepository interface {
	// AddThread stores a new thread owned by ownerID.
	AddThread(ctx context.Context, t AddThread, ownerID string) (AddedThread, error)

	// VerifyThreadAvailability returns ErrNotFound if the thread is absent or soft-deleted.
	VerifyThreadAvailability(ctx context.Context, id string) error

	// GetThreadByID reads a thread with its author's username.
	GetThreadByID(ctx context.Context, id string) (ThreadDetail, error)
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, payload Payload, ownerID string) (AddedThread, error)
	GetThreadByID(ctx context.Context, threadID string) (DetailThread, error)
}
